package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunHelp - Help output per command
// ---------------------------------------------------------------------------

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantErr    error
	}{
		{name: "no args", args: nil, wantStdout: "Usage: mdpicks <command>"},
		{name: "convert", args: []string{"convert"}, wantStdout: "Usage: mdpicks convert <input> [flags]"},
		{name: "version", args: []string{"version"}, wantStdout: "Usage: mdpicks version"},
		{name: "help", args: []string{"help"}, wantStdout: "Usage: mdpicks help [command]"},
		{name: "unknown", args: []string{"publish"}, wantErr: ErrUnknownCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			err := runHelp(tt.args, &Environment{Stdout: stdout, Stderr: stderr})

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if !strings.Contains(stderr.String(), "Unknown command: publish") {
					t.Errorf("stderr = %q, want unknown command message", stderr.String())
				}
				return
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
		})
	}
}

func TestPrintConvertUsage_ListsFlags(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printConvertUsage(&buf)

	for _, flag := range []string{
		"--output", "--config", "--workers", "--timeout",
		"--style", "--css", "--asset-path", "--no-style",
		"--fragment", "--hard-wraps", "--audit",
		"--quiet", "--verbose", "--summary",
		"MDPICKS_CONFIG",
	} {
		if !strings.Contains(buf.String(), flag) {
			t.Errorf("convert usage missing %s", flag)
		}
	}
}

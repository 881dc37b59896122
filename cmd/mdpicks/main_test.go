package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRun - Command dispatch
// ---------------------------------------------------------------------------

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantErr    error
		wantStdout string
		wantStderr string
	}{
		{name: "no command", args: nil, wantErr: ErrNoCommand, wantStderr: "Usage: mdpicks"},
		{name: "unknown command", args: []string{"render"}, wantErr: ErrUnknownCommand, wantStderr: "Usage: mdpicks"},
		{name: "version", args: []string{"version"}, wantStdout: "mdpicks " + Version},
		{name: "version flag", args: []string{"--version"}, wantStdout: "mdpicks " + Version},
		{name: "help", args: []string{"help", "convert"}, wantStdout: "Usage: mdpicks convert"},
		{name: "help flag", args: []string{"-h"}, wantStdout: "Commands:"},
		{name: "convert help flag", args: []string{"convert", "--help"}, wantStderr: "Usage: mdpicks convert"},
		{name: "convert bad flag", args: []string{"convert", "--bogus"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			env := &Environment{Stdout: stdout, Stderr: stderr}

			err := run(context.Background(), tt.args, env)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		quiet     bool
		verbose   bool
		wantDebug bool
		wantWarn  bool
	}{
		{name: "default", wantWarn: true},
		{name: "verbose", verbose: true, wantDebug: true, wantWarn: true},
		{name: "quiet", quiet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := newLogger(&Environment{Stderr: &buf}, tt.quiet, tt.verbose)
			logger.Debug("debug record")
			logger.Warn("warn record")

			if got := strings.Contains(buf.String(), "debug record"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(buf.String(), "warn record"); got != tt.wantWarn {
				t.Errorf("warn logged = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

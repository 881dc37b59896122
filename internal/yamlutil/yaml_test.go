package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-mdpicks/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Workers int    `yaml:"workers"`
	Audit   bool   `yaml:"audit"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Decodes into structs and interface values
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{name: "valid YAML", data: []byte("name: picks\nworkers: 4\naudit: true"), dest: &testConfig{}},
		{name: "unknown field tolerated", data: []byte("name: x\nextra: y"), dest: &testConfig{}},
		{name: "nil data", data: nil, dest: &testConfig{}, wantErr: yamlutil.ErrNilData},
		{name: "empty data", data: []byte{}, dest: &testConfig{}, wantErr: yamlutil.ErrNilData},
		{name: "nil destination", data: []byte("name: x"), dest: nil, wantErr: yamlutil.ErrNilDestination},
		{name: "invalid syntax", data: []byte("name: [unclosed"), dest: &testConfig{}, wantErr: errors.New("yamlutil:")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			checkErr(t, err, tt.wantErr)
		})
	}
}

func TestUnmarshal_InterfaceMapping(t *testing.T) {
	t.Parallel()

	data := []byte(`
title: Rain gear
products:
  - title: Cozy Rain Jacket
    rating: 4.6
    reviews_count: 12418
`)
	var v any
	if err := yamlutil.Unmarshal(data, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := v.(map[string]any)
	if !ok {
		t.Fatalf("decoded %T, want map[string]any", v)
	}
	list, ok := m["products"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("products = %#v, want one-element []any", m["products"])
	}
	if _, ok := list[0].(map[string]any); !ok {
		t.Errorf("product = %T, want map[string]any", list[0])
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Rejects unknown fields
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	if err := yamlutil.UnmarshalStrict([]byte("name: strict\nworkers: 2"), &cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "strict" || cfg.Workers != 2 {
		t.Errorf("cfg = %+v", cfg)
	}

	err := yamlutil.UnmarshalStrict([]byte("name: x\nunknown_field: y"), &testConfig{})
	checkErr(t, err, errors.New("yamlutil:"))
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Modifies the global MaxInputSize, so it does not run in parallel.
func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 50
	data := make([]byte, 100)
	copy(data, "name: x")

	err := yamlutil.Unmarshal(data, &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
	}
	if !strings.Contains(err.Error(), "100 bytes") || !strings.Contains(err.Error(), "max 50") {
		t.Errorf("error = %q, want sizes in message", err)
	}

	err = yamlutil.UnmarshalStrict(data, &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("UnmarshalStrict: errors.Is(err, ErrInputTooLarge) = false, got: %v", err)
	}
}

func checkErr(t *testing.T, err, want error) {
	t.Helper()

	if want == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}
	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}
	if errors.Is(err, want) {
		return
	}
	if !strings.Contains(err.Error(), want.Error()) {
		t.Fatalf("error = %q, want containing %q", err, want)
	}
}

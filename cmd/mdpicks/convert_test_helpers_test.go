package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	mdpicks "github.com/alnah/go-mdpicks"
)

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns a canned result.
type mockConverter struct {
	mu     sync.Mutex
	calls  []mdpicks.Input
	html   []byte
	picks  []mdpicks.Pick
	err    error
	errFor map[string]error // keyed by Markdown content
}

func newMockConverter() *mockConverter {
	return &mockConverter{html: []byte("<p>ok</p>\n")}
}

func (m *mockConverter) Convert(_ context.Context, input mdpicks.Input) (*mdpicks.ConvertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, input)
	if err, ok := m.errFor[input.Markdown]; ok {
		return nil, err
	}
	if m.err != nil {
		return nil, m.err
	}
	return &mdpicks.ConvertResult{HTML: m.html, Picks: m.picks}, nil
}

func (m *mockConverter) getCalls() []mdpicks.Input {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mdpicks.Input(nil), m.calls...)
}

// testPool hands out one shared converter.
type testPool struct {
	conv       Converter
	size       int
	acquireErr error
	opts       []mdpicks.Option
	closed     bool
}

func (p *testPool) Acquire() (Converter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	return p.conv, nil
}

func (p *testPool) Release(Converter) {}

func (p *testPool) Size() int { return p.size }

func (p *testPool) Close() error {
	p.closed = true
	return nil
}

// testEnv returns an environment writing to buffers and using pool.
// The options passed to NewPool are recorded on pool.
func testEnv(pool *testPool) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Stdout: stdout,
		Stderr: stderr,
		NewPool: func(_ int, opts ...mdpicks.Option) Pool {
			pool.opts = opts
			return pool
		},
	}
	return env, stdout, stderr
}

// realEnv returns an environment backed by real converters.
func realEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return &Environment{Stdout: stdout, Stderr: stderr, NewPool: newConverterPool}, stdout, stderr
}

// setupTestDir creates a temp directory with the given file structure.
// Files map paths to content. Returns the temp directory path.
func setupTestDir(t *testing.T, files map[string]string) string {
	t.Helper()
	tempDir := t.TempDir()

	for path, content := range files {
		fullPath := filepath.Join(tempDir, path)
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	return tempDir
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// jacketPost is a document with one matching product.
const jacketPost = `---
title: Rainy Day Gear
products:
  - title: Cozy Rain Jacket
    url: https://example.com/jacket
    rating: 4.55
    review_count: 12418
---

### Cozy Rain Jacket

Keeps the drizzle out.
`

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake jira client
// ---------------------------------------------------------------------------

// fakeRunner stands in for the jira binary. It answers `version` with version
// and every other command with stdout/stderr/err. block waits for cancellation.
type fakeRunner struct {
	mu      sync.Mutex
	stdout  string
	stderr  string
	err     error
	version string
	block   bool
	calls   [][]string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	r.mu.Lock()
	r.calls = append(r.calls, append([]string{name}, args...))
	r.mu.Unlock()

	if len(args) > 0 && args[0] == "version" {
		return r.version, "", nil
	}
	if r.block {
		<-ctx.Done()
		return "", "", ctx.Err()
	}
	return r.stdout, r.stderr, r.err
}

func (r *fakeRunner) getCalls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

var errExit1 = errors.New("exit status 1")

// testEnv returns an Environment whose client resolves every binary to
// /fake/bin/<name>, unless missing is set.
func testEnv(runner *fakeRunner, missing bool) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	env := &Environment{
		Stdout: stdout,
		Stderr: stderr,
		Runner: runner,
		LookPath: func(file string) (string, error) {
			if missing {
				return "", errors.New("executable file not found in $PATH")
			}
			return filepath.Join("/fake/bin", filepath.Base(file)), nil
		},
	}
	return env, stdout, stderr
}

// loadFixture reads a file from testdata.
func loadFixture(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	return string(data)
}

// readOutput reads a file the CLI was expected to write.
func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected output %s: %v", path, err)
	}
	return string(data)
}

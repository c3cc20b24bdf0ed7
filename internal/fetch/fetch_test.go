package fetch

// Notes:
// - Client is tested against a fake CommandRunner; the fake records the
//   command line so argument building is checked end to end.
// - ExecRunner is tested with /bin/sh on Unix only; the jira CLI itself is
//   covered by the integration tests in the root package.

import (
	"context"
	"errors"
	"os/exec"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Fake runner
// ---------------------------------------------------------------------------

type fakeRunner struct {
	stdout string
	stderr string
	err    error
	block  bool

	gotName string
	gotArgs []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	f.gotName = name
	f.gotArgs = args
	if f.block {
		<-ctx.Done()
		return "", "", ctx.Err()
	}
	return f.stdout, f.stderr, f.err
}

func foundAt(path string) func(string) (string, error) {
	return func(string) (string, error) { return path, nil }
}

func notFound(string) (string, error) {
	return "", exec.ErrNotFound
}

func intPtr(n int) *int { return &n }

// ---------------------------------------------------------------------------
// TestViewArgs - Command line construction
// ---------------------------------------------------------------------------

func TestViewArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		comments *int
		extra    []string
		want     []string
	}{
		{
			name: "plain view",
			key:  "PROJ-1",
			want: []string{"issue", "view", "PROJ-1", "--plain"},
		},
		{
			name:     "with comments",
			key:      "PROJ-1",
			comments: intPtr(5),
			want:     []string{"issue", "view", "PROJ-1", "--plain", "--comments", "5"},
		},
		{
			name:     "zero comments still passed",
			key:      "AB-22",
			comments: intPtr(0),
			want:     []string{"issue", "view", "AB-22", "--plain", "--comments", "0"},
		},
		{
			name:  "extra args appended last",
			key:   "PROJ-1",
			extra: []string{"-c", "/tmp/jira.yml"},
			want:  []string{"issue", "view", "PROJ-1", "--plain", "-c", "/tmp/jira.yml"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ViewArgs(tt.key, tt.comments, tt.extra)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ViewArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestClient_Fetch - Fetch outcomes
// ---------------------------------------------------------------------------

func TestClient_Fetch_Success(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{stdout: "# Title\n"}
	client := &Client{Runner: runner, LookPath: foundAt("/usr/local/bin/jira")}

	got, err := client.Fetch(context.Background(), "PROJ-7", intPtr(3))
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got != "# Title\n" {
		t.Errorf("Fetch() = %q, want %q", got, "# Title\n")
	}
	if runner.gotName != "/usr/local/bin/jira" {
		t.Errorf("ran %q, want resolved path", runner.gotName)
	}
	want := []string{"issue", "view", "PROJ-7", "--plain", "--comments", "3"}
	if !reflect.DeepEqual(runner.gotArgs, want) {
		t.Errorf("args = %q, want %q", runner.gotArgs, want)
	}
}

func TestClient_Fetch_ClientNotFound(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{}
	client := &Client{Binary: "jira-cli", Runner: runner, LookPath: notFound}

	_, err := client.Fetch(context.Background(), "PROJ-7", nil)
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("error = %v, want ErrClientNotFound", err)
	}
	if !strings.Contains(err.Error(), "'jira-cli'") {
		t.Errorf("error %q should name the binary", err)
	}
	if !strings.Contains(err.Error(), InstallURL) {
		t.Errorf("error %q should contain install URL", err)
	}
	if runner.gotName != "" {
		t.Error("runner should not be called when the client is missing")
	}
}

func TestClient_Fetch_Failure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		stderr  string
		err     error
		wantMsg string
	}{
		{
			name:    "stderr is reported trimmed",
			stderr:  "\n  Error: issue does not exist  \n",
			err:     errors.New("exit status 1"),
			wantMsg: "failed to fetch PROJ-7: Error: issue does not exist",
		},
		{
			name:    "exit status when stderr empty",
			err:     errors.New("exit status 2"),
			wantMsg: "failed to fetch PROJ-7: exit status 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := &Client{Runner: &fakeRunner{stderr: tt.stderr, err: tt.err}, LookPath: foundAt("jira")}

			_, err := client.Fetch(context.Background(), "PROJ-7", nil)
			if !errors.Is(err, ErrFetchFailed) {
				t.Fatalf("error = %v, want ErrFetchFailed", err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestClient_Fetch_Timeout(t *testing.T) {
	t.Parallel()

	client := &Client{Runner: &fakeRunner{block: true}, LookPath: foundAt("jira")}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx, "PROJ-7", nil)
	if !errors.Is(err, ErrFetchTimeout) {
		t.Fatalf("error = %v, want ErrFetchTimeout", err)
	}
}

func TestClient_Fetch_Canceled(t *testing.T) {
	t.Parallel()

	client := &Client{Runner: &fakeRunner{block: true}, LookPath: foundAt("jira")}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx, "PROJ-7", nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestClient_Version - Client version check
// ---------------------------------------------------------------------------

func TestClient_Version(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{stdout: "\nVersion=\"1.5.1\", GitCommit=\"abc\"\nextra line\n"}
	client := &Client{Runner: runner, LookPath: foundAt("jira")}

	got, err := client.Version(context.Background())
	if err != nil {
		t.Fatalf("Version() error = %v", err)
	}
	if got != `Version="1.5.1", GitCommit="abc"` {
		t.Errorf("Version() = %q", got)
	}
	if !reflect.DeepEqual(runner.gotArgs, []string{"version"}) {
		t.Errorf("args = %q, want [version]", runner.gotArgs)
	}
}

func TestClient_Version_NotFound(t *testing.T) {
	t.Parallel()

	client := &Client{LookPath: notFound}
	if _, err := client.Version(context.Background()); !errors.Is(err, ErrClientNotFound) {
		t.Errorf("error = %v, want ErrClientNotFound", err)
	}
}

// ---------------------------------------------------------------------------
// TestExecRunner - Real subprocesses
// ---------------------------------------------------------------------------

func TestExecRunner_CapturesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
	t.Parallel()

	r := &ExecRunner{}
	stdout, stderr, err := r.Run(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error = %v, want *exec.ExitError", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Errorf("exit code = %d, want 3", exitErr.ExitCode())
	}
	if stdout != "out\n" {
		t.Errorf("stdout = %q, want %q", stdout, "out\n")
	}
	if stderr != "err\n" {
		t.Errorf("stderr = %q, want %q", stderr, "err\n")
	}
}

func TestExecRunner_CancelKillsCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires /bin/sh")
	}
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, _, err := (&ExecRunner{}).Run(ctx, "sh", "-c", "sleep 10 & wait")
	if err == nil {
		t.Fatal("expected error for killed command")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("command ran for %v after cancellation", elapsed)
	}
}

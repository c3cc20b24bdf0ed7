// Package fetch retrieves the plain rendering of a Jira ticket by running the
// jira CLI (https://github.com/ankitpokhrel/jira-cli).
package fetch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultBinary is the jira CLI executable looked up on PATH.
const DefaultBinary = "jira"

// InstallURL points users to the jira CLI installation instructions.
const InstallURL = "https://github.com/ankitpokhrel/jira-cli"

// Sentinel errors for fetch operations.
var (
	ErrClientNotFound = errors.New("jira CLI not found")
	ErrFetchFailed    = errors.New("failed to fetch")
	ErrFetchTimeout   = errors.New("timed out fetching")
)

// CommandRunner abstracts command execution to enable testing without real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// Client fetches tickets through the jira CLI.
type Client struct {
	// Binary is the executable name or path. Empty means DefaultBinary.
	Binary string
	// ExtraArgs are appended to every `issue view` invocation.
	ExtraArgs []string
	// Runner executes the command. Nil means ExecRunner.
	Runner CommandRunner
	// LookPath resolves Binary. Nil means exec.LookPath.
	LookPath func(file string) (string, error)
}

// NewClient creates a Client for binary using the real command runner.
func NewClient(binary string) *Client {
	return &Client{
		Binary:   binary,
		Runner:   &ExecRunner{},
		LookPath: exec.LookPath,
	}
}

// Fetch runs `jira issue view KEY --plain` and returns its stdout.
// A non-nil comments asks the client for that many comments.
func (c *Client) Fetch(ctx context.Context, key string, comments *int) (string, error) {
	path, err := c.resolve()
	if err != nil {
		return "", err
	}

	stdout, stderr, err := c.runner().Run(ctx, path, ViewArgs(key, comments, c.ExtraArgs)...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w %s", ErrFetchTimeout, key)
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w %s: %s", ErrFetchFailed, key, failureDetail(stderr, err))
	}

	return stdout, nil
}

// Version runs `jira version` and returns the first line of its output.
func (c *Client) Version(ctx context.Context) (string, error) {
	path, err := c.resolve()
	if err != nil {
		return "", err
	}

	stdout, stderr, err := c.runner().Run(ctx, path, "version")
	if err != nil {
		return "", fmt.Errorf("running %s version: %s", c.binary(), failureDetail(stderr, err))
	}

	line, _, _ := strings.Cut(strings.TrimSpace(stdout), "\n")
	return strings.TrimSpace(line), nil
}

// Path returns the resolved location of the client binary.
func (c *Client) Path() (string, error) {
	return c.resolve()
}

// ViewArgs builds the argument list for `issue view`.
func ViewArgs(key string, comments *int, extra []string) []string {
	args := []string{"issue", "view", key, "--plain"}
	if comments != nil {
		args = append(args, "--comments", strconv.Itoa(*comments))
	}
	return append(args, extra...)
}

func (c *Client) resolve() (string, error) {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	path, err := lookPath(c.binary())
	if err != nil {
		return "", fmt.Errorf("%w: no '%s' on PATH. Install: %s", ErrClientNotFound, c.binary(), InstallURL)
	}
	return path, nil
}

func (c *Client) binary() string {
	if c.Binary == "" {
		return DefaultBinary
	}
	return c.Binary
}

func (c *Client) runner() CommandRunner {
	if c.Runner == nil {
		return &ExecRunner{}
	}
	return c.Runner
}

// failureDetail prefers the client's own message over the exit status.
func failureDetail(stderr string, err error) string {
	if msg := strings.TrimSpace(stderr); msg != "" {
		return msg
	}
	return err.Error()
}

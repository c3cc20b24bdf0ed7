package main

import (
	"io"
	"os"
	"os/exec"

	"github.com/alnah/go-jira2md/internal/fetch"
)

// Environment holds injectable dependencies for testability.
// Tests replace the runner and path lookup so no jira binary is needed.
type Environment struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Runner   fetch.CommandRunner
	LookPath func(file string) (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Runner:   &fetch.ExecRunner{},
		LookPath: exec.LookPath,
	}
}

// client builds a jira client bound to the environment's runner.
func (e *Environment) client(binary string, extraArgs []string) *fetch.Client {
	return &fetch.Client{
		Binary:    binary,
		ExtraArgs: extraArgs,
		Runner:    e.Runner,
		LookPath:  e.LookPath,
	}
}

package fetch

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/alnah/go-jira2md/internal/process"
)

// ExecRunner implements CommandRunner using os/exec.
// The command runs in its own process group, killed when ctx is done.
type ExecRunner struct{}

func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...) // #nosec G204 -- binary is user-configured
	process.Configure(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

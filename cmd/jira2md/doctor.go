package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-jira2md/internal/config"
	"github.com/alnah/go-jira2md/internal/fetch"
	"github.com/alnah/go-jira2md/internal/fileutil"
)

// versionTimeout bounds `jira version` during diagnostics.
const versionTimeout = 10 * time.Second

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Client   clientInfo `json:"client"`
	Env      envInfo    `json:"environment"`
	Output   outputInfo `json:"output"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// clientInfo holds jira client detection results.
type clientInfo struct {
	Found   bool   `json:"found"`
	Binary  string `json:"binary"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	APIToken bool   `json:"jira_api_token"`
}

// outputInfo holds output directory check results.
type outputInfo struct {
	Dir      string `json:"dir"`
	Writable bool   `json:"writable"`
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	json    bool
	jiraBin string
	output  string
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(ctx context.Context, args []string, env *Environment) int {
	fs := newFlagSet("doctor")
	f := &doctorFlags{}
	fs.BoolVar(&f.json, "json", false, "print results as JSON")
	fs.StringVar(&f.jiraBin, "jira-bin", "", "jira client binary name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output directory to check")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(env.Stdout, "Usage: jira2md doctor [--json] [--jira-bin PATH] [-o DIR]")
			return ExitSuccess
		}
		printError(env.Stderr, translateFlagError(err))
		return ExitFailure
	}

	cfg := config.DefaultConfig()
	applyEnvConfig(loadEnvConfig(), cfg)
	if f.jiraBin != "" {
		cfg.Jira.Binary = f.jiraBin
	}
	if f.output != "" {
		cfg.Output.Dir = f.output
	}

	result := runDoctor(ctx, env.client(cfg.Jira.Binary, nil), cfg.Output.Dir)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitFailure
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(ctx context.Context, client *fetch.Client, outputDir string) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:       runtime.GOOS,
			Arch:     runtime.GOARCH,
			APIToken: os.Getenv("JIRA_API_TOKEN") != "",
		},
	}

	checkClient(ctx, client, result)
	checkCredentials(result)
	checkOutput(outputDir, result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkClient locates the jira client and asks for its version.
func checkClient(ctx context.Context, client *fetch.Client, result *doctorResult) {
	result.Client.Binary = client.Binary
	if result.Client.Binary == "" {
		result.Client.Binary = fetch.DefaultBinary
	}

	path, err := client.Path()
	if err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("jira CLI '%s' not found. Install: %s", result.Client.Binary, fetch.InstallURL))
		return
	}
	result.Client.Found = true
	result.Client.Path = path

	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	version, err := client.Version(ctx)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not get jira CLI version: %v", err))
		return
	}
	result.Client.Version = version
}

// checkCredentials warns when no API token is exported.
// The client may still authenticate through its own config or a keyring.
func checkCredentials(result *doctorResult) {
	if !result.Env.APIToken {
		result.Warnings = append(result.Warnings,
			"JIRA_API_TOKEN not set. The jira CLI needs it unless another auth method is configured")
	}
}

// checkOutput verifies the output directory accepts new files.
func checkOutput(dir string, result *doctorResult) {
	if dir == "" {
		dir = "."
	}
	result.Output.Dir = dir

	if err := fileutil.CheckWritableDir(dir); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Output directory not writable: %s", dir))
		return
	}
	result.Output.Writable = true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "jira2md doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "jira CLI")
	if r.Client.Found {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Client.Path)
		if r.Client.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Client.Version)
		}
	} else {
		fmt.Fprintf(w, "  [ERROR] '%s' not found\n", r.Client.Binary)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.APIToken {
		fmt.Fprintln(w, "  [OK] JIRA_API_TOKEN: set")
	} else {
		fmt.Fprintln(w, "  [WARN] JIRA_API_TOKEN: not set")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Output")
	if r.Output.Writable {
		fmt.Fprintf(w, "  [OK] %s: writable\n", r.Output.Dir)
	} else {
		fmt.Fprintf(w, "  [ERROR] %s: not writable\n", r.Output.Dir)
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready to convert")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	jira2md "github.com/alnah/go-jira2md"
	"github.com/alnah/go-jira2md/internal/config"
	"github.com/alnah/go-jira2md/internal/fetch"
	"github.com/alnah/go-jira2md/internal/fileutil"
)

// Sentinel errors for output handling.
var (
	ErrWriteOutput = errors.New("failed to write output")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// settings is the merged result of flags, environment and config file.
type settings struct {
	key       string
	comments  *int
	outputDir string
	html      bool
	keepMeta  bool
	timeout   time.Duration
	binary    string
	extraArgs []string
}

// markdownPath returns the path of KEY.md in the output directory.
func (s *settings) markdownPath() string {
	return filepath.Join(s.outputDir, s.key+".md")
}

// htmlPath returns the path of KEY.html in the output directory.
func (s *settings) htmlPath() string {
	return filepath.Join(s.outputDir, s.key+".html")
}

// runConvert converts one ticket and writes KEY.md (and KEY.html).
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(logger)

	key, err := ticketKey(positional)
	if err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common.config, envCfg, logger)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)

	s, err := resolveSettings(key, flags, cfg)
	if err != nil {
		return err
	}

	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	req := jira2md.Request{Key: s.key, Comments: s.comments}
	if s.keepMeta {
		req.Previous = readPrevious(s.markdownPath(), logger)
	}

	client := env.client(s.binary, s.extraArgs)
	logger.Debug("running jira client",
		"binary", s.binary,
		"args", fetch.ViewArgs(s.key, s.comments, s.extraArgs),
		"timeout", s.timeout)

	opts := []jira2md.Option{
		jira2md.WithClient(client),
		jira2md.WithTimeout(s.timeout),
		jira2md.WithLogger(logger),
	}
	if s.html {
		opts = append(opts, jira2md.WithPreview())
	}

	result, err := jira2md.New(opts...).Convert(ctx, req)
	if err != nil {
		return err
	}

	if err := writeOutput(env.Stdout, s.markdownPath(), result.Markdown, flags.common.quiet); err != nil {
		return err
	}
	if s.html {
		if err := writeOutput(env.Stdout, s.htmlPath(), result.HTML, flags.common.quiet); err != nil {
			return err
		}
	}

	logger.Debug("ticket written",
		"key", s.key,
		"status", result.Document.Status,
		"comments", result.Document.HasComments())
	return nil
}

// loadConfig loads the config file named by --config or JIRA2MD_CONFIG.
// Without either, defaults are used: no file is auto-discovered.
func loadConfig(flagConfig string, env *envConfig, logger *slog.Logger) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, path, err := config.LoadConfig(name)
	if err != nil {
		return nil, &configError{name: name, err: err}
	}
	logger.Debug("loaded config", "path", path)
	return cfg, nil
}

// configError remembers which config name failed so hints can list the
// locations that were searched.
type configError struct {
	name string
	err  error
}

func (e *configError) Error() string { return e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

// resolveSettings merges flags over the (env-applied) config.
func resolveSettings(key string, flags *convertFlags, cfg *config.Config) (*settings, error) {
	s := &settings{
		key:       key,
		outputDir: cfg.Output.Dir,
		html:      cfg.Output.HTML || flags.html,
		keepMeta:  cfg.Output.KeepMeta || flags.keepMeta,
		timeout:   cfg.Jira.Timeout,
		binary:    cfg.Jira.Binary,
		extraArgs: cfg.Jira.ExtraArgs,
	}

	if flags.output != "" {
		s.outputDir = flags.output
	}
	if flags.jiraBin != "" {
		s.binary = flags.jiraBin
	}

	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidTimeout, flags.timeout, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("%w %q: must be positive", ErrInvalidTimeout, flags.timeout)
		}
		s.timeout = d
	}
	if s.timeout <= 0 {
		s.timeout = jira2md.DefaultTimeout
	}

	switch {
	case flags.commentsSet:
		n, err := parseComments(flags.comments)
		if err != nil {
			return nil, err
		}
		s.comments = &n
	case cfg.Comments > 0:
		n := cfg.Comments
		s.comments = &n
	}

	return s, nil
}

// readPrevious returns the existing output file for keep-meta, or nil.
func readPrevious(path string, logger *slog.Logger) io.Reader {
	data, err := os.ReadFile(path) // #nosec G304 -- path is KEY.md in the output directory
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("cannot read existing file", "path", path, "error", err)
		}
		return nil
	}
	return bytes.NewReader(data)
}

// writeOutput writes content atomically and reports the created path.
func writeOutput(stdout io.Writer, path, content string, quiet bool) error {
	if err := fileutil.WriteFileAtomic(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w %s: %v", ErrWriteOutput, path, err)
	}
	if !quiet {
		fmt.Fprintf(stdout, "Created %s\n", path)
	}
	return nil
}

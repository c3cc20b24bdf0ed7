package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-jira2md/internal/fileutil"
	"github.com/alnah/go-jira2md/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidTimeout  = errors.New("timeout must be positive")
	ErrInvalidComments = errors.New("comments cannot be negative")
)

// AppDir is the directory name under the user config directory.
const AppDir = "jira2md"

// Field length limits.
const (
	MaxBinaryLength = 4096 // PATH_MAX on Linux
	MaxDirLength    = 4096
	MaxExtraArgs    = 32
)

// Config holds all configuration for ticket conversion.
type Config struct {
	Jira     JiraConfig   `yaml:"jira"`
	Output   OutputConfig `yaml:"output"`
	Comments int          `yaml:"comments"` // Default comment count when --comments is not given (0 = none)
}

// JiraConfig defines how the jira CLI is invoked.
type JiraConfig struct {
	Binary    string        `yaml:"binary"`    // Executable name or path (default: "jira")
	Timeout   time.Duration `yaml:"timeout"`   // Fetch timeout (0 = default)
	ExtraArgs []string      `yaml:"extraArgs"` // Appended to `issue view`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir      string `yaml:"dir"`      // Output directory (empty = current directory)
	HTML     bool   `yaml:"html"`     // Also write KEY.html
	KeepMeta bool   `yaml:"keepMeta"` // Carry extra frontmatter keys over from an existing file
}

// Validate checks field ranges and lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("jira.binary", c.Jira.Binary, MaxBinaryLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxDirLength); err != nil {
		return err
	}
	if len(c.Jira.ExtraArgs) > MaxExtraArgs {
		return fmt.Errorf("%w: jira.extraArgs (%d args, max %d)", ErrFieldTooLong, len(c.Jira.ExtraArgs), MaxExtraArgs)
	}
	if c.Jira.Timeout < 0 {
		return fmt.Errorf("%w: jira.timeout %v", ErrInvalidTimeout, c.Jira.Timeout)
	}
	if c.Comments < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidComments, c.Comments)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Jira:   JiraConfig{Binary: "jira"},
		Output: OutputConfig{Dir: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Fields absent from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, string, error) {
	if nameOrPath == "" {
		return nil, "", ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, "", err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, "", fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if cfg.Jira.Binary == "" {
		cfg.Jira.Binary = DefaultConfig().Jira.Binary
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return cfg, configPath, nil
}

// SearchPaths returns the locations tried for a config name, in order:
// ./name.yaml, ./name.yml, then the same names under the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDir, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

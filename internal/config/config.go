package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2html/internal/fileutil"
	"github.com/alnah/go-md2html/internal/pipeline"
	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Accepted values for enumerated fields.
const (
	DigestMD5    = pipeline.DigestMD5
	DigestBLAKE3 = pipeline.DigestBLAKE3

	ModeBlock = pipeline.ModeBlockName
	ModeLine  = pipeline.ModeLineName

	EngineTransformer = pipeline.EngineTransformer
	EngineGoldmark    = pipeline.EngineGoldmark
)

// Limits.
const (
	MaxTitleLength = 200  // <title> text
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxWorkers     = 64
)

// appDirName is the directory under os.UserConfigDir searched for named configs.
const appDirName = "go-md2html"

// Config holds all configuration for a conversion run.
type Config struct {
	Syntax  SyntaxConfig `yaml:"syntax"`
	Mode    string       `yaml:"mode"`   // "block" (default) or "line"
	Engine  string       `yaml:"engine"` // "transformer" (default) or "goldmark"
	Output  OutputConfig `yaml:"output"`
	Workers int          `yaml:"workers"` // 0 = auto
}

// SyntaxConfig defines the inline grammar.
type SyntaxConfig struct {
	Custom bool   `yaml:"custom"` // [[digest]] and ((strip)) spans
	Digest string `yaml:"digest"` // "md5" (default) or "blake3"
}

// OutputConfig defines the shape of written files.
type OutputConfig struct {
	Standalone bool   `yaml:"standalone"` // wrap in a full HTML5 document
	Title      string `yaml:"title"`      // empty = first heading
	Style      string `yaml:"style"`      // built-in style name or CSS path
	AssetPath  string `yaml:"assetPath"`  // directory with styles/{name}.css
	CSS        string `yaml:"css"`        // stylesheet path, standalone only
}

// DefaultConfig returns the baseline configuration: block mode, custom
// syntax off, fragment output.
func DefaultConfig() *Config {
	return &Config{
		Syntax: SyntaxConfig{Custom: false, Digest: DigestMD5},
		Mode:   ModeBlock,
		Engine: EngineTransformer,
		Output: OutputConfig{Standalone: false},
	}
}

// Validate checks enumerated values and field limits.
// Called automatically by LoadConfig, and by the CLI after flags are merged.
func (c *Config) Validate() error {
	if err := validateOneOf("syntax.digest", c.Syntax.Digest, DigestMD5, DigestBLAKE3); err != nil {
		return err
	}
	if err := validateOneOf("mode", c.Mode, ModeBlock, ModeLine); err != nil {
		return err
	}
	if err := validateOneOf("engine", c.Engine, EngineTransformer, EngineGoldmark); err != nil {
		return err
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	if err := validateFieldLength("output.title", c.Output.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.style", c.Output.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.assetPath", c.Output.AssetPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.css", c.Output.CSS, MaxPathLength); err != nil {
		return err
	}
	return nil
}

// validateOneOf accepts an empty value (meaning default) or one of allowed,
// compared case-insensitively.
func validateOneOf(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Dump renders cfg as YAML, in the same layout LoadConfig reads.
func (c *Config) Dump() (string, error) {
	data, err := yamlutil.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// SearchPaths returns the candidate files for a config name, in lookup order.
// Tries extensions .yaml then .yml, in the current directory first and then
// in the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

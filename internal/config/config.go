package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/filefmt/internal/errors"
)

// Header casing modes for csv-to-json field names.
const (
	CaseOriginal = "original"
	CaseSnake    = "snake"
	CaseCamel    = "camel"
	CasePascal   = "pascal"
)

// Config represents the complete configuration for filefmt
type Config struct {
	Delimiter string       `yaml:"delimiter"`
	Escape    string       `yaml:"escape"`
	Output    OutputConfig `yaml:"output"`
	Naming    NamingConfig `yaml:"naming"`
	Dev       DevConfig    `yaml:"dev"`
}

// OutputConfig controls how destination files are written
type OutputConfig struct {
	// Indent is the number of spaces per JSON indentation level.
	Indent int `yaml:"indent"`
	// Overwrite allows replacing an existing destination file.
	Overwrite bool `yaml:"overwrite"`
}

// NamingConfig controls field naming on the JSON side
type NamingConfig struct {
	// HeaderCase rewrites CSV header names into JSON object keys:
	// original, snake, camel or pascal.
	HeaderCase string `yaml:"header_case"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Delimiter: ",",
		Escape:    "",
		Output: OutputConfig{
			Indent:    4,
			Overwrite: true,
		},
		Naming: NamingConfig{
			HeaderCase: CaseOriginal,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to read config file '%s'", path), err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to parse config file '%s'", path), err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".filefmt.yml", ".filefmt.yaml", "filefmt.yml", "filefmt.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks configuration values that cannot be expressed by the
// YAML schema alone.
func (c *Config) Validate() error {
	switch c.Naming.HeaderCase {
	case CaseOriginal, CaseSnake, CaseCamel, CasePascal:
	default:
		return errors.NewInputError(
			fmt.Sprintf("invalid header_case '%s': must be one of original, snake, camel, pascal", c.Naming.HeaderCase), nil)
	}
	if c.Output.Indent < 0 {
		return errors.NewInputError("output indent must not be negative", nil)
	}
	return nil
}

// FieldName returns the JSON object key for a CSV header name, applying
// the configured casing rule.
func (c *Config) FieldName(header string) string {
	switch c.Naming.HeaderCase {
	case CaseSnake:
		return strcase.ToSnake(header)
	case CaseCamel:
		return strcase.ToLowerCamel(header)
	case CasePascal:
		return strcase.ToCamel(header)
	default:
		return header
	}
}

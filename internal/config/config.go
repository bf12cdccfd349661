package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tomltag/tomltag/internal/errors"
	"github.com/tomltag/tomltag/internal/tagjson"
)

// ConfigFileName is the file searched for in the working directory and
// the home directory when no explicit path is given.
const ConfigFileName = ".tomltag.yaml"

// Config represents the complete configuration for tomltag. Every
// default reproduces the wire contract exactly; an absent or empty
// config file changes nothing.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Strings StringsConfig `yaml:"strings"`
}

// OutputConfig controls JSON output options
type OutputConfig struct {
	// EscapeUnicode renders non-ASCII codepoints as \uXXXX escapes.
	EscapeUnicode bool `yaml:"escape_unicode"`
}

// StringsConfig controls string value rendering
type StringsConfig struct {
	// MalformedUTF8 is "passthrough" (copy the raw byte) or "replace"
	// (substitute U+FFFD) for truncated UTF-8 sequences.
	MalformedUTF8 string `yaml:"malformed_utf8"`
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Output:  OutputConfig{EscapeUnicode: true},
		Strings: StringsConfig{MalformedUTF8: string(tagjson.MalformedPassthrough)},
	}
}

// Load returns the configuration from the explicit path if given,
// otherwise from the first config file found in the search path, or
// the defaults when none exists.
func Load(explicit string) (*Config, error) {
	if explicit != "" {
		return LoadFile(explicit)
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return NewConfig(), nil
}

// LoadFile reads a yaml config file and merges it over the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewConfigError(
				fmt.Sprintf("config file '%s' not found", path),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewConfigError(
			fmt.Sprintf("failed to read config file '%s'", path),
			err,
		)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError(
			fmt.Sprintf("failed to parse config file '%s'", path),
			err,
		)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch tagjson.MalformedMode(c.Strings.MalformedUTF8) {
	case tagjson.MalformedPassthrough, tagjson.MalformedReplace:
		return nil
	}
	return errors.NewConfigError(
		fmt.Sprintf("invalid malformed_utf8 mode '%s' (expected 'passthrough' or 'replace')", c.Strings.MalformedUTF8),
		nil,
	)
}

// EncoderOptions converts the configuration into serializer options.
func (c *Config) EncoderOptions() tagjson.Options {
	opt := tagjson.DefaultOptions()
	opt.EscapeUnicode = c.Output.EscapeUnicode
	opt.MalformedUTF8 = tagjson.MalformedMode(c.Strings.MalformedUTF8)
	return opt
}

func searchPaths() []string {
	paths := []string{ConfigFileName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ConfigFileName))
	}
	return paths
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"github.com/brenoafb/arithc/pkg/compiler"
)

const DefaultPath = "arithc.yaml"

var (
	ErrInvalidEntry     = errors.New("invalid entry symbol")
	ErrInvalidOutputExt = errors.New("output extension must start with '.' and name no directory")
	ErrUnknownFormat    = errors.New("unknown config format")
)

var symbolRe = regexp.MustCompile(`^[A-Za-z_.$][A-Za-z0-9_.$]*$`)

// Config holds the compiler settings read from arithc.yaml or arithc.toml.
type Config struct {
	Entry       string `yaml:"entry" toml:"entry"`
	NoExecStack bool   `yaml:"noexec_stack" toml:"noexec_stack"`
	OutputExt   string `yaml:"output_ext" toml:"output_ext"`
	Verbose     bool   `yaml:"verbose" toml:"verbose"`
}

func Default() *Config {
	return &Config{
		Entry:       compiler.DefaultEntry,
		NoExecStack: true,
		OutputExt:   ".s",
	}
}

// Load reads the config file at path. A missing file yields the defaults;
// keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if !symbolRe.MatchString(c.Entry) {
		return fmt.Errorf("%w: %q", ErrInvalidEntry, c.Entry)
	}
	if len(c.OutputExt) < 2 || c.OutputExt[0] != '.' || strings.ContainsAny(c.OutputExt, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidOutputExt, c.OutputExt)
	}
	return nil
}

func (c *Config) CompilerOptions() compiler.Options {
	return compiler.Options{
		Entry:       c.Entry,
		NoExecStack: c.NoExecStack,
	}
}

// OutputPath returns input with its extension replaced by OutputExt, in the
// same directory.
func (c *Config) OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + c.OutputExt
}

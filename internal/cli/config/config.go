// Package config loads CLI configuration from defaults, a YAML file,
// ASTDDL_* environment variables and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/zoobzio/astddl"
	"github.com/zoobzio/astddl/internal/render"
)

// Default values applied before any other source.
const (
	DefaultDialect  = "default"
	DefaultKeywords = "upper"
	DefaultNames    = "quoted"
	DefaultIndent   = 2
	envPrefix       = "ASTDDL_"
)

// Config holds the resolved CLI settings.
type Config struct {
	Dialect  string `koanf:"dialect"`
	Schema   string `koanf:"schema"`
	Keywords string `koanf:"keywords"`
	Names    string `koanf:"names"`
	Indent   int    `koanf:"indent"`
	IfExists bool   `koanf:"if_exists"`
	Cascade  bool   `koanf:"cascade"`
	Pretty   bool   `koanf:"pretty"`
	Verbose  bool   `koanf:"verbose"`

	// File is the config file that was read, empty when none was found.
	File string `koanf:"-"`
}

// findConfigFile returns the explicit path or the first astddl.yaml/astddl.yml
// in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"astddl.yaml", "astddl.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dialect":   DefaultDialect,
		"keywords":  DefaultKeywords,
		"names":     DefaultNames,
		"indent":    DefaultIndent,
		"if_exists": false,
		"cascade":   false,
		"pretty":    false,
		"verbose":   false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// ASTDDL_IF_EXISTS -> if_exists
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only flags set on the command line override other sources.
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every named setting resolves.
func (c *Config) Validate() error {
	if _, err := c.ResolveDialect(); err != nil {
		return err
	}
	if _, err := astddl.ParseKeywordCase(c.Keywords); err != nil {
		return err
	}
	if _, err := astddl.ParseNameStyle(c.Names); err != nil {
		return err
	}
	if c.Pretty && c.Indent < 0 {
		return fmt.Errorf("indent must not be negative, got %d", c.Indent)
	}
	return nil
}

// ResolveDialect parses the configured dialect name.
func (c *Config) ResolveDialect() (astddl.Dialect, error) {
	d, ok := astddl.ParseDialect(c.Dialect)
	if !ok {
		return astddl.DialectDefault, render.NewUnknownNameError("dialect", c.Dialect)
	}
	return d, nil
}

// Options converts the configuration into render options.
func (c *Config) Options() ([]astddl.Option, error) {
	keywords, err := astddl.ParseKeywordCase(c.Keywords)
	if err != nil {
		return nil, err
	}
	names, err := astddl.ParseNameStyle(c.Names)
	if err != nil {
		return nil, err
	}

	opts := []astddl.Option{
		astddl.WithKeywordCase(keywords),
		astddl.WithNameStyle(names),
	}
	if c.Pretty {
		opts = append(opts, astddl.WithPretty(c.Indent))
	}
	return opts, nil
}

// Copyright 2021 The apix Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config loads the configuration of the apix command from an
// optional YAML file, APIX_ environment variables and command line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gogama/apix"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Cache policy names.
const (
	CacheReload   = "reload"
	CacheProtocol = "protocol"
)

// Config is the complete configuration of the apix command.
type Config struct {
	Endpoint EndpointConfig `mapstructure:"endpoint"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Output   string         `mapstructure:"output"`
}

// EndpointConfig describes the API the command talks to.
//
// Header names read from a config file are lower-cased.
type EndpointConfig struct {
	BaseURL     string            `mapstructure:"base_url"`
	Headers     map[string]string `mapstructure:"headers"`
	Timeout     time.Duration     `mapstructure:"timeout"`
	CachePolicy string            `mapstructure:"cache_policy"`
	HTTP2       bool              `mapstructure:"http2"`
}

// LoggingConfig controls the zap logger built by package logger.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// CachePolicyValue returns the executor cache policy named by
// CachePolicy.
func (e EndpointConfig) CachePolicyValue() apix.CachePolicy {
	if e.CachePolicy == CacheProtocol {
		return apix.UseProtocolCachePolicy
	}

	return apix.ReloadIgnoringCache
}

var defaults = map[string]interface{}{
	"endpoint.base_url":     "",
	"endpoint.timeout":      "30s",
	"endpoint.cache_policy": CacheReload,
	"endpoint.http2":        false,
	"logging.level":         "warn",
	"logging.format":        "console",
	"logging.output_path":   "",
	"output":                OutputJSON,
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"base-url":     "endpoint.base_url",
	"timeout":      "endpoint.timeout",
	"cache-policy": "endpoint.cache_policy",
	"http2":        "endpoint.http2",
	"log-level":    "logging.level",
	"log-format":   "logging.format",
	"log-file":     "logging.output_path",
	"output":       "output",
}

// InitFlags defines the configuration flags on fs. It does not parse
// them.
func InitFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML config file (default ./apix.yaml if present)")
	fs.String("base-url", "", "Base URL the path segments are appended to")
	fs.Duration("timeout", 30*time.Second, "Timeout of the call")
	fs.String("cache-policy", CacheReload, "Cache policy (reload|protocol)")
	fs.Bool("http2", false, "Use an HTTP/2 capable transport")
	fs.String("log-level", "warn", "Log level (debug|info|warn|error)")
	fs.String("log-format", "console", "Log format (console|json)")
	fs.String("log-file", "", "Write logs to this file instead of stderr")
	fs.StringP("output", "o", OutputJSON, "Output format (json|yaml)")
}

// Load reads the configuration. If path is empty, apix.yaml is looked
// for in the working directory and may be absent. Flags defined by
// InitFlags on fs override every other source; fs may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	v.SetEnvPrefix("APIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("apix")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Endpoint.CachePolicy {
	case CacheReload, CacheProtocol:
	default:
		return fmt.Errorf("invalid cache policy: %q", c.Endpoint.CachePolicy)
	}
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output format: %q", c.Output)
	}
	if c.Endpoint.Timeout <= 0 {
		return fmt.Errorf("invalid timeout: %s", c.Endpoint.Timeout)
	}
	return nil
}

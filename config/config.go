// Package config reads the settings of the sonicweave console from a YAML file.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/sonicweave/dsl"
	"gopkg.in/yaml.v2"
)

const (
	// FileName is the name of the configuration file in the user's home directory
	FileName = `.sonicweave.yaml`

	DefaultPrompt      = `𝄞 `
	DefaultHistoryFile = `.sonicweave_history`
)

// Config holds the console settings. Empty values are replaced with defaults
// when the configuration is loaded.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Title       string `yaml:"title"`
	LogLevel    string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	c := &Config{}
	c.fillDefaults()
	return c
}

// DefaultPath returns the path of the configuration file in the user's home
// directory or the empty string when the home directory is unknown
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ``
	}
	return filepath.Join(home, FileName)
}

// Load reads the configuration from the file at the given path. A missing file
// yields the default configuration. Errors are issue.Reported.
func Load(path string) (*Config, error) {
	if path == `` {
		return Default(), nil
	}
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, issue.NewReported(ConfigReadFailed, issue.SEVERITY_ERROR, issue.H{`path`: path, `detail`: err.Error()}, nil)
	}
	return Parse(path, data)
}

// Parse reads the configuration from YAML data. The path is only used in error
// messages.
func Parse(path string, data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, issue.NewReported(ConfigParseFailed, issue.SEVERITY_ERROR, issue.H{`path`: path, `detail`: err.Error()}, nil)
	}
	if c.LogLevel != `` {
		if _, ok := dsl.ParseLogLevel(c.LogLevel); !ok {
			return nil, issue.NewReported(IllegalLogLevel, issue.SEVERITY_ERROR, issue.H{`path`: path, `level`: c.LogLevel}, nil)
		}
	}
	c.fillDefaults()
	return c, nil
}

func (c *Config) fillDefaults() {
	if c.Prompt == `` {
		c.Prompt = DefaultPrompt
	}
	if c.HistoryFile == `` {
		c.HistoryFile = DefaultHistoryFile
	}
	if c.LogLevel == `` {
		c.LogLevel = string(dsl.NOTICE)
	}
}

// Level returns the configured log level
func (c *Config) Level() dsl.LogLevel {
	if l, ok := dsl.ParseLogLevel(c.LogLevel); ok {
		return l
	}
	return dsl.NOTICE
}

// HistoryPath returns the absolute path of the history file. A relative
// history file is resolved against the user's home directory.
func (c *Config) HistoryPath() string {
	if filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return c.HistoryFile
	}
	return filepath.Join(home, c.HistoryFile)
}

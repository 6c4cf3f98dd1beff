// Package config loads the interpreter's optional TOML configuration.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Ayman17/OS-Assignment-1/pkg/sandbox"
	"github.com/BurntSushi/toml"
)

// Config is the top-level configuration.
type Config struct {
	// StartDir is the initial working directory. Default: process cwd.
	StartDir string `toml:"start_dir"`
	// Home is the directory a bare cd switches to. Default: user home.
	Home string `toml:"home"`

	Sandbox Sandbox `toml:"sandbox"`
}

// Sandbox restricts which paths commands may touch.
type Sandbox struct {
	Enabled       bool       `toml:"enabled"`
	AllowStartDir bool       `toml:"allow_start_dir"`
	Paths         []PathRule `toml:"paths"`
}

// PathRule grants access to a path prefix. Mode is "r" or "rw".
type PathRule struct {
	Path string `toml:"path"`
	Mode string `toml:"mode"`
}

// Load reads and parses the TOML file at path. Missing fields are filled
// with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("parsing config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.fillDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.fillDefaults(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() error {
	if c.StartDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("working directory: %w", err)
		}
		c.StartDir = cwd
	}
	if c.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = c.StartDir
		}
		c.Home = home
	}
	return nil
}

// SandboxConfig converts the sandbox section into rules for package sandbox.
func (c *Config) SandboxConfig() (*sandbox.Config, error) {
	sc := &sandbox.Config{
		StartDir:      c.StartDir,
		AllowStartDir: c.Sandbox.AllowStartDir,
	}
	for _, rule := range c.Sandbox.Paths {
		if rule.Path == "" {
			return nil, fmt.Errorf("sandbox path rule: empty path")
		}
		mode := rule.Mode
		if mode == "" {
			mode = "r"
		}
		perm, err := sandbox.ParsePermission(mode)
		if err != nil {
			return nil, fmt.Errorf("sandbox path %q: %w", rule.Path, err)
		}
		sc.AllowedPaths = append(sc.AllowedPaths, sandbox.PathRule{Path: rule.Path, Permission: perm})
	}
	return sc, nil
}

// ApplySandbox enables or disables the process-wide sandbox to match c.
func (c *Config) ApplySandbox() error {
	if !c.Sandbox.Enabled {
		sandbox.Disable()
		return nil
	}
	sc, err := c.SandboxConfig()
	if err != nil {
		return err
	}
	return sandbox.Init(sc)
}

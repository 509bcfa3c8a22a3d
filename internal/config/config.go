package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ServerConfig stores connection details for a listing server
type ServerConfig struct {
	// Base URL, e.g. "http://192.168.1.20:8000"
	URL string `yaml:"url"`
	// Display name from discovery
	Name string `yaml:"name,omitempty"`
}

// LogConfig controls the log output of the terminal app
type LogConfig struct {
	// Log file path. Empty discards logs since the UI owns the terminal.
	File string `yaml:"file,omitempty"`
	// debug, info, warn or error
	Level string `yaml:"level,omitempty"`
}

// ViewerConfig holds media viewer options
type ViewerConfig struct {
	// Enable left/right navigation in the room viewer
	RoomArrowKeys bool `yaml:"room_arrow_keys"`
}

// Config stores all application configuration
type Config struct {
	// List of known listing servers
	Servers []ServerConfig `yaml:"servers"`
	// URL of the last used server
	LastServer string `yaml:"last_server,omitempty"`
	// Overrides the image asset prefix derived from the server URL
	AssetBase string `yaml:"asset_base,omitempty"`
	// Run against the built-in sample listing
	Demo bool `yaml:"demo,omitempty"`

	Log    LogConfig    `yaml:"log"`
	Viewer ViewerConfig `yaml:"viewer"`
}

var (
	ErrServerNotFound = errors.New("server not found")
	ErrNoServers      = errors.New("no servers configured")
)

// Environment variables that override the config file
const (
	EnvServer   = "SHOWCASE_SERVER"
	EnvDemo     = "SHOWCASE_DEMO"
	EnvLogLevel = "LOG_LEVEL"
	EnvDebug    = "DEBUG"
)

// configDir returns the configuration directory path
func configDir() (string, error) {
	// Check XDG_CONFIG_HOME first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "homeshowcase"), nil
	}

	// Fall back to ~/.config
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "homeshowcase"), nil
}

// Path returns the full path to the config file
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from disk
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to disk
func (c *Config) Save() error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

// ApplyEnv overrides file values with environment variables. Values are
// not written back by Save unless the caller keeps them.
func (c *Config) ApplyEnv() {
	if server := strings.TrimSpace(os.Getenv(EnvServer)); server != "" {
		c.AddServer(ServerConfig{URL: server})
		c.LastServer = server
	}

	if demo, err := strconv.ParseBool(os.Getenv(EnvDemo)); err == nil {
		c.Demo = demo
	}

	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	} else if debug, err := strconv.ParseBool(os.Getenv(EnvDebug)); err == nil && debug {
		c.Log.Level = "debug"
	}
}

// AddServer adds or updates a server configuration
func (c *Config) AddServer(server ServerConfig) {
	// Check if server already exists and update it
	for i, s := range c.Servers {
		if s.URL == server.URL {
			if server.Name == "" {
				server.Name = s.Name
			}
			c.Servers[i] = server
			return
		}
	}

	// Add new server
	c.Servers = append(c.Servers, server)
}

// GetServer returns the server configuration by URL
func (c *Config) GetServer(url string) (*ServerConfig, error) {
	for i := range c.Servers {
		if c.Servers[i].URL == url {
			return &c.Servers[i], nil
		}
	}
	return nil, ErrServerNotFound
}

// GetLastServer returns the last used server or the first available
func (c *Config) GetLastServer() (*ServerConfig, error) {
	if len(c.Servers) == 0 {
		return nil, ErrNoServers
	}

	// Try to get the last used server
	if c.LastServer != "" {
		server, err := c.GetServer(c.LastServer)
		if err == nil {
			return server, nil
		}
	}

	// Fall back to first server
	return &c.Servers[0], nil
}

// RemoveServer removes a server by URL
func (c *Config) RemoveServer(url string) {
	for i, s := range c.Servers {
		if s.URL == url {
			c.Servers = append(c.Servers[:i], c.Servers[i+1:]...)
			if c.LastServer == url {
				c.LastServer = ""
			}
			return
		}
	}
}

// HasServers returns true if at least one server is configured
func (c *Config) HasServers() bool {
	return len(c.Servers) > 0
}

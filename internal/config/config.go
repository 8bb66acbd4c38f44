package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/zhubert/codepad/internal/errors"
	"github.com/zhubert/codepad/internal/snippets"
)

// DefaultServerURL is the execution/assistant service used when nothing else is configured.
const DefaultServerURL = "http://127.0.0.1:8000"

// ServerEnvVar overrides server_url from the config file.
const ServerEnvVar = "CODEPAD_SERVER"

// Preference keys understood by Get and Set.
const (
	KeyTheme         = "theme"
	KeyLanguage      = "language"
	KeyServerURL     = "server_url"
	KeyNotifications = "notifications_enabled"
)

// Config holds the application configuration
type Config struct {
	ServerURL             string            `json:"server_url,omitempty"`
	Language              string            `json:"language,omitempty"`              // Language selected at startup
	Theme                 string            `json:"theme,omitempty"`                 // "light" or "dark"; empty follows the terminal
	NotificationsEnabled  bool              `json:"notifications_enabled,omitempty"` // Desktop notifications when a request settles unfocused
	RequestTimeoutSeconds int               `json:"request_timeout_seconds,omitempty"`
	Snippets              map[string]string `json:"snippets,omitempty"` // Per-language starter code overrides

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".codepad"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from ~/.codepad/config.json, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, pkgerrors.ConfigLoadFailed("~/.codepad", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from path. A missing file yields an empty config bound to path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, pkgerrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, pkgerrors.ConfigLoadFailed(path, err)
	}

	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureInitialized must only be called before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.Snippets == nil {
		c.Snippets = make(map[string]string)
	}
}

// Validate checks that the config values are usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.Theme {
	case "", "light", "dark":
	default:
		return pkgerrors.ConfigInvalid(fmt.Sprintf("theme must be \"light\" or \"dark\", got %q", c.Theme))
	}

	if c.ServerURL != "" {
		if err := ValidateServerURL(c.ServerURL); err != nil {
			return err
		}
	}

	if c.Language != "" {
		if err := validateLanguage(c.Language); err != nil {
			return err
		}
	}

	if c.RequestTimeoutSeconds < 0 {
		return pkgerrors.ConfigInvalid("request_timeout_seconds must not be negative")
	}

	return nil
}

func validateLanguage(id string) error {
	if _, ok := snippets.Lookup(id); !ok {
		return pkgerrors.ConfigInvalid(fmt.Sprintf("unknown language %q (supported: %s)", id, strings.Join(snippets.IDs(), ", ")))
	}
	return nil
}

// ValidateServerURL checks that raw is an absolute http(s) URL.
func ValidateServerURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return pkgerrors.ConfigInvalid(fmt.Sprintf("invalid server_url %q: %v", raw, err))
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return pkgerrors.ConfigInvalid(fmt.Sprintf("server_url %q must be an http(s) URL", raw))
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.saveLocked()
}

func (c *Config) saveLocked() error {
	if c.filePath == "" {
		path, err := configPath()
		if err != nil {
			return pkgerrors.ConfigSaveFailed("~/.codepad", err)
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return pkgerrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return pkgerrors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return pkgerrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file this config is loaded from and saved to.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Get returns a stored preference. The bool is false when the key was never set.
func (c *Config) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch key {
	case KeyTheme:
		return c.Theme, c.Theme != ""
	case KeyLanguage:
		return c.Language, c.Language != ""
	case KeyServerURL:
		return c.ServerURL, c.ServerURL != ""
	case KeyNotifications:
		return strconv.FormatBool(c.NotificationsEnabled), c.NotificationsEnabled
	}
	return "", false
}

// Set stores a preference and writes the file.
func (c *Config) Set(key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch key {
	case KeyTheme:
		if value != "light" && value != "dark" {
			return pkgerrors.ConfigInvalid(fmt.Sprintf("theme must be \"light\" or \"dark\", got %q", value))
		}
		c.Theme = value
	case KeyLanguage:
		if err := validateLanguage(value); err != nil {
			return err
		}
		c.Language = value
	case KeyServerURL:
		if err := ValidateServerURL(value); err != nil {
			return err
		}
		c.ServerURL = value
	case KeyNotifications:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return pkgerrors.ConfigInvalid(fmt.Sprintf("%s must be a boolean, got %q", key, value))
		}
		c.NotificationsEnabled = enabled
	default:
		return pkgerrors.ConfigInvalid(fmt.Sprintf("unknown preference %q", key))
	}

	return c.saveLocked()
}

// GetServerURL resolves the service base URL: CODEPAD_SERVER, then server_url, then the default.
func (c *Config) GetServerURL() string {
	if env := os.Getenv(ServerEnvVar); env != "" {
		return env
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.ServerURL != "" {
		return c.ServerURL
	}
	return DefaultServerURL
}

// GetLanguage returns the language to select at startup, or "" for the default.
func (c *Config) GetLanguage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Language
}

// GetTheme returns the persisted theme mode, or "" if none was ever saved.
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetRequestTimeout returns the HTTP client timeout; zero means no client-level timeout.
func (c *Config) GetRequestTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// GetSnippets returns a copy of the per-language snippet overrides.
func (c *Config) GetSnippets() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.Snippets))
	for k, v := range c.Snippets {
		out[k] = v
	}
	return out
}

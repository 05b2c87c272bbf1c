// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default configuration values.
const (
	DefaultHost     = "0.0.0.0"
	DefaultPort     = 8080
	DefaultLogLevel = "INFO"
	DefaultDataDir  = ".crastudio"
	DefaultDBName   = "crastudio.db"
	DefaultPoolMax  = 10
	DefaultPoolIdle = 5
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// AppConfig is the immutable, normalized application configuration handed to
// the rest of the process at startup.
type AppConfig struct {
	host      string
	port      int
	dataDir   string
	dbURL     string
	logLevel  string
	logFormat LogFormat
	apiKeys   []string
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port.
func (c AppConfig) Port() int { return c.port }

// Addr returns the host:port listen address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the configured log verbosity.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the configured log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// APIKeys returns the configured API keys, empty when write protection is off.
func (c AppConfig) APIKeys() []string {
	keys := make([]string, len(c.apiKeys))
	copy(keys, c.apiKeys)
	return keys
}

// WithHost returns a copy with the host overridden.
func (c AppConfig) WithHost(host string) AppConfig {
	if host != "" {
		c.host = host
	}
	return c
}

// WithPort returns a copy with the port overridden.
func (c AppConfig) WithPort(port int) AppConfig {
	if port > 0 {
		c.port = port
	}
	return c
}

// EnsureDataDir creates the data directory if it does not exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// defaultDBURL builds the sqlite URL inside the data directory.
func defaultDBURL(dataDir string) string {
	return "sqlite:///" + filepath.Join(dataDir, DefaultDBName)
}

package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR (default: .crastudio)
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/crastudio.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// APIKeys is a comma-separated list of valid API keys. When set,
	// mutating endpoints require one of these keys.
	// Env: API_KEYS
	APIKeys string `envconfig:"API_KEYS"`
}

// LoadFromEnv reads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig normalizes the raw environment values into an AppConfig,
// filling defaults that depend on other fields.
func (e EnvConfig) ToAppConfig() AppConfig {
	dataDir := e.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	dbURL := e.DBURL
	if dbURL == "" {
		dbURL = defaultDBURL(dataDir)
	}

	format := LogFormatPretty
	if strings.EqualFold(e.LogFormat, string(LogFormatJSON)) {
		format = LogFormatJSON
	}

	var keys []string
	for _, k := range strings.Split(e.APIKeys, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}

	return AppConfig{
		host:      e.Host,
		port:      e.Port,
		dataDir:   dataDir,
		dbURL:     dbURL,
		logLevel:  strings.ToUpper(e.LogLevel),
		logFormat: format,
		apiKeys:   keys,
	}
}

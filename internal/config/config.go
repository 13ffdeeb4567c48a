package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Transport variants accepted in GENIE_TRANSPORT.
const (
	TransportREST = "rest"
	TransportSDK  = "sdk"
	TransportMock = "mock"
)

type Config struct {
	AppPort            int           `mapstructure:"APP_PORT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	DatabricksHost     string        `mapstructure:"DATABRICKS_HOST"`
	DatabricksToken    string        `mapstructure:"DATABRICKS_TOKEN"`
	DatabricksProfile  string        `mapstructure:"DATABRICKS_CONFIG_PROFILE"`
	GenieSpaceID       string        `mapstructure:"DATABRICKS_GENIE_SPACE_ID"`
	EnvOverrideFile    string        `mapstructure:"GENIE_ENV_OVERRIDE_FILE"`
	Transport          string        `mapstructure:"GENIE_TRANSPORT"`
	PollInterval       time.Duration `mapstructure:"GENIE_POLL_INTERVAL"`
	PollMaxAttempts    int           `mapstructure:"GENIE_POLL_MAX_ATTEMPTS"`
	WaitTimeout        time.Duration `mapstructure:"GENIE_WAIT_TIMEOUT"`
	HTTPTimeout        time.Duration `mapstructure:"GENIE_HTTP_TIMEOUT"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	StaticDir          string        `mapstructure:"STATIC_DIR"`

	// FileUsed is the .env file that was read, empty when none was found.
	FileUsed string `mapstructure:"-"`
}

// keys lists every setting so AutomaticEnv can see them during Unmarshal even when
// no default exists.
var keys = []string{
	"APP_PORT", "LOG_LEVEL", "DATABRICKS_HOST", "DATABRICKS_TOKEN", "DATABRICKS_CONFIG_PROFILE",
	"DATABRICKS_GENIE_SPACE_ID", "GENIE_ENV_OVERRIDE_FILE", "GENIE_TRANSPORT", "GENIE_POLL_INTERVAL",
	"GENIE_POLL_MAX_ATTEMPTS", "GENIE_WAIT_TIMEOUT", "GENIE_HTTP_TIMEOUT", "CORS_ALLOWED_ORIGINS",
	"STATIC_DIR",
}

// LoadConfig reads settings from the environment and the optional .env and .env.local
// files in the working directory. Environment variables win over .env.local, which
// wins over .env.
func LoadConfig() (*Config, error) {
	return load(".")
}

func load(paths ...string) (*Config, error) {
	v := viper.New()

	v.SetDefault("APP_PORT", 8000)
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("GENIE_ENV_OVERRIDE_FILE", ".env.local")
	v.SetDefault("GENIE_TRANSPORT", TransportREST)
	v.SetDefault("GENIE_POLL_INTERVAL", 3*time.Second)
	v.SetDefault("GENIE_POLL_MAX_ATTEMPTS", 20)
	v.SetDefault("GENIE_WAIT_TIMEOUT", 5*time.Minute)
	v.SetDefault("GENIE_HTTP_TIMEOUT", 30*time.Second)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("STATIC_DIR", "client/dist")

	v.SetConfigName(".env")
	v.SetConfigType("env")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := applyOverrideFile(v, paths); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Transport = strings.ToLower(strings.TrimSpace(cfg.Transport))
	cfg.FileUsed = v.ConfigFileUsed()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyOverrideFile layers GENIE_ENV_OVERRIDE_FILE over .env. A relative path is
// taken from the first config path. Keys present in the real environment are left
// alone.
func applyOverrideFile(v *viper.Viper, paths []string) error {
	path := v.GetString("GENIE_ENV_OVERRIDE_FILE")
	if path == "" {
		return nil
	}
	if !filepath.IsAbs(path) && len(paths) > 0 {
		path = filepath.Join(paths[0], path)
	}

	values, err := ReadEnvFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}
	for k, val := range values {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		v.Set(k, val)
	}
	return nil
}

func (c *Config) validate() error {
	switch {
	case c.PollInterval <= 0:
		return fmt.Errorf("GENIE_POLL_INTERVAL must be positive, got %s", c.PollInterval)
	case c.PollMaxAttempts <= 0:
		return fmt.Errorf("GENIE_POLL_MAX_ATTEMPTS must be positive, got %d", c.PollMaxAttempts)
	case c.WaitTimeout <= 0:
		return fmt.Errorf("GENIE_WAIT_TIMEOUT must be positive, got %s", c.WaitTimeout)
	case c.HTTPTimeout <= 0:
		return fmt.Errorf("GENIE_HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	return nil
}

// ReadEnvFile parses a KEY=VALUE file with viper and returns its contents with
// upper-cased keys. A missing file yields an empty map and no error.
func ReadEnvFile(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(v.AllKeys()))
	for _, k := range v.AllKeys() {
		out[strings.ToUpper(k)] = v.GetString(k)
	}
	return out, nil
}

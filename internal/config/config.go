package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Port    string        `mapstructure:"port"`
	Log     LogConfig     `mapstructure:"log"`
	API     APIConfig     `mapstructure:"api"`
	View    ViewConfig    `mapstructure:"view"`
	Sandbox SandboxConfig `mapstructure:"sandbox"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"` // console | json
}

// APIConfig points at the remote users collection.
type APIConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
}

type ViewConfig struct {
	ConfirmTTL        time.Duration `mapstructure:"confirm_ttl"`
	NotificationLimit int           `mapstructure:"notification_limit"`
}

// SandboxConfig configures the local stand-in for the remote collection.
type SandboxConfig struct {
	Port   string `mapstructure:"port"`
	DBPath string `mapstructure:"db_path"`
	Seed   bool   `mapstructure:"seed"`
}

const envPrefix = "UM"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("api.base_url", "https://jsonplaceholder.typicode.com")
	v.SetDefault("api.user_agent", "user-management/dev")
	v.SetDefault("view.confirm_ttl", 2*time.Minute)
	v.SetDefault("view.notification_limit", 50)
	v.SetDefault("sandbox.port", "8090")
	v.SetDefault("sandbox.db_path", "sandbox.db")
	v.SetDefault("sandbox.seed", true)
}

// Load reads config.yml from the given directories (first match wins) and
// applies UM_* environment overrides, e.g. UM_API_BASE_URL. A missing file is
// not an error; defaults apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

const (
	defaultAppName    = "user-management"
	defaultAppVersion = "dev"
)

// UserAgentParts splits api.user_agent ("app/version") into its parts.
// Missing parts fall back to "user-management" and "dev".
func (c APIConfig) UserAgentParts() (app, version string) {
	app, version, _ = strings.Cut(strings.TrimSpace(c.UserAgent), "/")
	if app == "" {
		app = defaultAppName
	}
	if version == "" {
		version = defaultAppVersion
	}
	return app, version
}

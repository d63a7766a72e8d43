package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	API        APIConfig

	// questlog specifics
	Remote         RemoteConfig
	Scheduler      SchedulerConfig
	History        HistoryConfig
	Notify         NotifyConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// APIConfig protects the public API. An empty AccessToken disables auth.
type APIConfig struct {
	AccessToken     string
	RateLimitPerMin int
}

// RemoteConfig points at the sync service.
type RemoteConfig struct {
	URL             string
	AccessToken     string
	Timeout         time.Duration
	RateLimitPerSec float64
	Burst           int
}

type SchedulerConfig struct {
	Interval time.Duration
	Timezone string
}

type HistoryConfig struct {
	DataDir string
}

type NotifyConfig struct {
	Capacity int
	TTL      time.Duration
}

// GoogleCalendarConfig is optional. Goal deadlines are mirrored only when
// CredentialsPath is set.
type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.API.AccessToken = viper.GetString("api.access_token")
	cfg.API.RateLimitPerMin = viper.GetInt("api.rate_limit_per_min")

	// Sync service
	cfg.Remote.URL = viper.GetString("remote.url")
	cfg.Remote.AccessToken = viper.GetString("remote.access_token")
	cfg.Remote.Timeout = viper.GetDuration("remote.timeout")
	cfg.Remote.RateLimitPerSec = viper.GetFloat64("remote.rate_limit_per_sec")
	cfg.Remote.Burst = viper.GetInt("remote.burst")
	if remoteURL := viper.GetString("remote_url"); remoteURL != "" {
		cfg.Remote.URL = remoteURL
	}
	if remoteToken := viper.GetString("remote_access_token"); remoteToken != "" {
		cfg.Remote.AccessToken = remoteToken
	}

	cfg.Scheduler.Interval = viper.GetDuration("scheduler.interval")
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")

	cfg.History.DataDir = viper.GetString("history.data_dir")

	cfg.Notify.Capacity = viper.GetInt("notify.capacity")
	cfg.Notify.TTL = viper.GetDuration("notify.ttl")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Remote.URL == "" {
		return fmt.Errorf("remote.url is required")
	}
	if cfg.Scheduler.Interval < time.Second {
		return fmt.Errorf("scheduler.interval must be at least 1s, got %s", cfg.Scheduler.Interval)
	}
	if _, err := time.LoadLocation(cfg.Scheduler.Timezone); err != nil {
		return fmt.Errorf("scheduler.timezone: %w", err)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("api.rate_limit_per_min", 120)

	viper.SetDefault("remote.timeout", "10s")
	viper.SetDefault("remote.rate_limit_per_sec", 5)
	viper.SetDefault("remote.burst", 10)

	viper.SetDefault("scheduler.interval", "60s")
	viper.SetDefault("scheduler.timezone", "UTC")
	viper.SetDefault("history.data_dir", "./data")
	viper.SetDefault("notify.capacity", 50)
	viper.SetDefault("notify.ttl", "10m")

	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

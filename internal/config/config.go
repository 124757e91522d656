package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/spf13/viper"
)

const DefaultServerURL = "http://127.0.0.1:5000"

type Config struct {
	ServerURL string `mapstructure:"server_url"`
	LogPath   string `mapstructure:"log_path"`
	Dev       bool   `mapstructure:"dev"`
}

// Load merges defaults, the optional YAML config file, PROCESSTEXT_* env vars
// and explicitly set flags, in increasing priority.
func Load(f *Flags) (*Config, error) {
	if f == nil {
		f = &Flags{}
	}

	v := viper.New()
	v.SetDefault("server_url", DefaultServerURL)
	v.SetDefault("log_path", "")
	v.SetDefault("dev", false)
	v.SetEnvPrefix("PROCESSTEXT")
	v.AutomaticEnv()

	if f.ConfigFile != "" {
		v.SetConfigFile(f.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if f.set["server"] {
		cfg.ServerURL = f.ServerURL
	}
	if f.set["logPath"] {
		cfg.LogPath = f.LogPath
	}
	if f.set["dev"] {
		cfg.Dev = f.Dev
	}

	if err := validateServerURL(cfg.ServerURL); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateServerURL(raw string) error {
	if raw == "" {
		return errors.New("server_url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid server_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid server_url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid server_url %q: missing host", raw)
	}
	return nil
}

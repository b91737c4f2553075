package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API  APIConfig  `yaml:"api"`
	Auth AuthConfig `yaml:"auth"`
	Log  LogConfig  `yaml:"log"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type AuthConfig struct {
	// CredentialsFile is where the session token and last used credentials
	// are kept between runs.
	CredentialsFile string `yaml:"credentials_file"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

func Load(configFile string) *Config {
	c := &Config{
		API:  APIConfig{BaseURL: "http://localhost:8080", Timeout: 15 * time.Second},
		Auth: AuthConfig{CredentialsFile: defaultCredentialsFile()},
		Log:  LogConfig{Level: "info", MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
	}

	paths := []string{"etc/taskmaster.yaml", filepath.Join(configDir(), "config.yaml")}
	if configFile != "" {
		paths = []string{configFile}
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			yaml.Unmarshal(data, c)
			break
		}
	}

	envOverride(&c.API.BaseURL, "TASKMASTER_API_URL")
	envOverride(&c.Auth.CredentialsFile, "TASKMASTER_CREDENTIALS_FILE")
	envOverride(&c.Log.Level, "LOG_LEVEL")
	envOverride(&c.Log.File, "LOG_FILE")
	envOverrideDuration(&c.API.Timeout, "TASKMASTER_API_TIMEOUT")

	return c
}

func configDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "taskmaster")
}

func defaultCredentialsFile() string {
	return filepath.Join(configDir(), "credentials.json")
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		} else if n, err := strconv.Atoi(v); err == nil {
			*dst = time.Duration(n) * time.Second
		}
	}
}

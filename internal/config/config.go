// Package config loads application settings with viper from
// ~/.config/studyhub/config.yaml. A missing file is not an error; every
// setting has a default.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Database overrides the SQLite path (STUDYHUB_DB wins over both).
	Database string

	WorkMinutes  int
	BreakMinutes int

	// AudioCommand is the shell command spawned as the ambient-audio backend.
	// Empty means no audio.
	AudioCommand string
	Autoplay     bool
}

func (c Config) WorkDuration() time.Duration {
	return time.Duration(c.WorkMinutes) * time.Minute
}

func (c Config) BreakDuration() time.Duration {
	return time.Duration(c.BreakMinutes) * time.Minute
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "studyhub"))
	v.SetEnvPrefix("studyhub")
	v.AutomaticEnv()

	v.SetDefault("database", "")
	v.SetDefault("work_minutes", 25)
	v.SetDefault("break_minutes", 5)
	v.SetDefault("audio_command", "")
	v.SetDefault("autoplay", true)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	cfg := Config{
		Database:     v.GetString("database"),
		WorkMinutes:  v.GetInt("work_minutes"),
		BreakMinutes: v.GetInt("break_minutes"),
		AudioCommand: v.GetString("audio_command"),
		Autoplay:     v.GetBool("autoplay"),
	}
	if cfg.WorkMinutes < 1 {
		cfg.WorkMinutes = 25
	}
	if cfg.BreakMinutes < 1 {
		cfg.BreakMinutes = 5
	}
	return cfg, nil
}

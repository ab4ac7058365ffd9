package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// ConfigPathEnv points at a directory holding a .monthcal config file.
const ConfigPathEnv = "MONTHCAL_CONFIG_PATH"

type Config interface {
	BasePath() string
	// Optimistic keeps in-memory changes when a write fails.
	Optimistic() bool
	Holidays() bool
	Weather() bool
}

// LoadConfig reads .monthcal.{yaml,json,toml} from MONTHCAL_CONFIG_PATH or the
// working directory, with MONTHCAL_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.monthcal.db")
	v.SetDefault("optimistic", false)
	v.SetDefault("holidays", true)
	v.SetDefault("weather", true)
	v.SetConfigName(".monthcal") // .yaml is implicit
	v.SetEnvPrefix("MONTHCAL")
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}

	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{
		Path:          path,
		OptimisticSet: v.GetBool("optimistic"),
		HolidaysSet:   v.GetBool("holidays"),
		WeatherSet:    v.GetBool("weather"),
		File:          v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	Path          string `json:"path"`
	OptimisticSet bool   `json:"optimistic"`
	HolidaysSet   bool   `json:"holidays"`
	WeatherSet    bool   `json:"weather"`
	File          string `json:"file,omitempty"`
}

func (f *fileConfig) BasePath() string { return f.Path }

func (f *fileConfig) Optimistic() bool { return f.OptimisticSet }

func (f *fileConfig) Holidays() bool { return f.HolidaysSet }

func (f *fileConfig) Weather() bool { return f.WeatherSet }

// ConfigFile reports the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.File
	}
	return ""
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path             string
	OptimisticWrites bool
	DisableHolidays  bool
	DisableWeather   bool
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) Optimistic() bool { return s.OptimisticWrites }

func (s StaticConfig) Holidays() bool { return !s.DisableHolidays }

func (s StaticConfig) Weather() bool { return !s.DisableWeather }

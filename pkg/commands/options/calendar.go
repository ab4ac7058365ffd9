// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"tableflip.dev/monthcal/pkg/app"
	"tableflip.dev/monthcal/pkg/lookup"
	"tableflip.dev/monthcal/pkg/store"
)

// forecastSeed keeps the stand-in forecast stable between runs.
const forecastSeed = "monthcal"

// CalendarOptions override the loaded config for a single invocation.
type CalendarOptions struct {
	Path       string
	Optimistic bool
	NoHolidays bool
	NoWeather  bool
	Ephemeral  bool
}

func AddCalendarArgs(cmd *cobra.Command, o *CalendarOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Directory the calendar is stored in, overrides the config path.")
	cmd.PersistentFlags().BoolVar(&o.Optimistic, "optimistic", false,
		"Keep changes in memory when saving fails.")
	cmd.PersistentFlags().BoolVar(&o.NoHolidays, "no-holidays", false,
		"Hide holiday annotations.")
	cmd.PersistentFlags().BoolVar(&o.NoWeather, "no-weather", false,
		"Hide weather annotations.")
	cmd.PersistentFlags().BoolVar(&o.Ephemeral, "ephemeral", false,
		"Start from an empty calendar held in memory, nothing is read or saved.")
}

// Config loads the config file and applies the flag overrides.
func (o *CalendarOptions) Config() (store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	if o.Path == "" && !o.Optimistic && !o.NoHolidays && !o.NoWeather {
		return cfg, nil
	}

	path := cfg.BasePath()
	if o.Path != "" {
		if path, err = homedir.Expand(o.Path); err != nil {
			return nil, err
		}
	}
	return store.StaticConfig{
		Path:             path,
		OptimisticWrites: cfg.Optimistic() || o.Optimistic,
		DisableHolidays:  !cfg.Holidays() || o.NoHolidays,
		DisableWeather:   !cfg.Weather() || o.NoWeather,
	}, nil
}

// Open loads the calendar described by the config. Ephemeral runs use an
// in-memory store in place of the configured path.
func (o *CalendarOptions) Open() (*app.Controller, store.Persistence, error) {
	cfg, err := o.Config()
	if err != nil {
		return nil, nil, err
	}
	var p store.Persistence
	if o.Ephemeral {
		p = store.NewMemory()
	} else if p, err = store.Load(cfg); err != nil {
		return nil, nil, err
	}

	opts := app.Options{
		Optimistic: cfg.Optimistic(),
		Log:        logrus.StandardLogger(),
	}
	if cfg.Holidays() {
		opts.Holidays = lookup.NewHolidays()
	}
	if cfg.Weather() {
		opts.Weather = lookup.Forecast{Seed: forecastSeed}
	}

	c, err := app.New(p, opts)
	if err != nil {
		return nil, nil, err
	}
	return c, p, nil
}

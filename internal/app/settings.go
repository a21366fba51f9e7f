package app

import (
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/zerr"
)

// configurableLogger is implemented by loggers whose format and level can
// change after construction.
type configurableLogger interface {
	SetJSON(enable bool)
	SetLevel(level domain.LogLevel)
}

// Settings loads the configuration file, applies the overrides in opts and
// configures the logger accordingly.
func (a *App) Settings(opts Options) (domain.Settings, error) {
	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.Theta != nil {
		if err := domain.ValidateTheta(*opts.Theta); err != nil {
			return domain.Settings{}, err
		}
		settings.Theta = *opts.Theta
	}
	if opts.MaxComplexity != nil {
		if *opts.MaxComplexity == 0 {
			return domain.Settings{}, zerr.With(domain.ErrInvalidConfig, "max_complexity", 0)
		}
		settings.MaxComplexity = *opts.MaxComplexity
	}
	if opts.Parallelism != nil {
		if *opts.Parallelism < 1 {
			return domain.Settings{}, zerr.With(domain.ErrInvalidConfig, "parallelism", *opts.Parallelism)
		}
		settings.Parallelism = *opts.Parallelism
	}
	if opts.CacheDir != nil {
		settings.CacheDir = *opts.CacheDir
	}
	if opts.Verbose {
		settings.LogLevel = domain.LogLevelDebug
	}
	if opts.JSONLogs {
		settings.LogJSON = true
	}

	if l, ok := a.logger.(configurableLogger); ok {
		l.SetJSON(settings.LogJSON)
		l.SetLevel(settings.LogLevel)
	}
	return settings, nil
}

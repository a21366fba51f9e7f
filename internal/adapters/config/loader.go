// Package config provides the settings loader for gtprob.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"math"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/gtprob/internal/core/domain"
	"go.trai.ch/gtprob/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "gtprob.yaml"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads the settings from path. With an empty path it reads
// DefaultFilename from the working directory and returns the defaults when
// that file does not exist.
func (l *Loader) Load(path string) (domain.Settings, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return domain.Settings{}, zerr.With(domain.ErrConfigNotFound, "path", path)
			}
			l.logger.Debug("no configuration file, using defaults", "path", path)
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	settings, err := Parse(data)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", path)
	}
	l.logger.Debug("loaded configuration", "path", path, "theta", settings.Theta)
	return settings, nil
}

// Parse decodes and validates a configuration document. Keys that are not
// set keep their default values.
func Parse(data []byte) (domain.Settings, error) {
	var file Configfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if file.Version != "" && file.Version != domain.ConfigVersion {
		return domain.Settings{}, zerr.With(domain.ErrUnsupportedConfigVersion, "version", file.Version)
	}

	if err := validate.Struct(&file); err != nil {
		return domain.Settings{}, validationError(err)
	}

	settings := domain.DefaultSettings()
	if file.Theta != nil {
		if math.IsInf(*file.Theta, 0) || math.IsNaN(*file.Theta) {
			return domain.Settings{}, zerr.With(domain.ErrInvalidConfig, "field", "theta")
		}
		settings.Theta = *file.Theta
	}
	if file.MaxComplexity != nil {
		settings.MaxComplexity = *file.MaxComplexity
	}
	if file.Parallelism != nil {
		settings.Parallelism = *file.Parallelism
	}
	settings.CacheDir = file.CacheDir
	settings.LogJSON = file.Log.JSON
	if file.Log.Level != "" {
		settings.LogLevel = domain.ParseLogLevel(file.Log.Level)
	}
	return settings, nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return zerr.Wrap(err, domain.ErrInvalidConfig.Error())
	}

	fe := fieldErrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Configfile.")
	out := zerr.With(domain.ErrInvalidConfig, "field", field)
	out = zerr.With(out, "rule", fe.Tag()+optionalParam(fe.Param()))
	return zerr.With(out, "value", fe.Value())
}

func optionalParam(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}

package config

// Configfile represents the structure of the gtprob.yaml configuration file.
// Pointer fields distinguish an absent key from an explicit zero.
type Configfile struct {
	Version       string   `yaml:"version"`
	Theta         *float64 `yaml:"theta" validate:"omitempty,gt=0"`
	MaxComplexity *uint64  `yaml:"max_complexity" validate:"omitempty,gt=0"`
	Parallelism   *int     `yaml:"parallelism" validate:"omitempty,min=1,max=1024"`
	CacheDir      string   `yaml:"cache_dir"`
	Log           LogDTO   `yaml:"log"`
}

// LogDTO represents the logging section of the configuration.
type LogDTO struct {
	JSON  bool   `yaml:"json"`
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

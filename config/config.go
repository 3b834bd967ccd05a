package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/satkit/gosat/solver"
)

// Config holds every tunable the CLI exposes. Fields are decoded from
// viper by name, lower-cased, with dashes mapped to the mapstructure
// tag rather than relying on the default case folding.
type Config struct {
	// Verbose enables debug-level logging.
	Verbose bool `mapstructure:"verbose"`
	// NegativePolarity makes the solver branch on the negative phase
	// of each chosen variable instead of the positive one.
	NegativePolarity bool `mapstructure:"negative-polarity"`
	// MaxConflicts caps the number of conflicts Solve will tolerate
	// before giving up and returning Indet. Zero means unlimited.
	MaxConflicts int `mapstructure:"max-conflicts"`
	// ConfigFile is the optional path to a YAML/TOML/JSON config file
	// merged underneath flags and environment variables.
	ConfigFile string `mapstructure:"-"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{Verbose: false, NegativePolarity: false, MaxConflicts: 0}
}

// BindFlags registers the flags Config understands on fs and binds
// them into v, so a later Load reflects whatever the user passed on
// the command line.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.Bool("verbose", false, "enable debug logging")
	fs.Bool("negative-polarity", false, "branch on the negative phase of each decision variable")
	fs.Int("max-conflicts", 0, "maximum number of conflicts before giving up (0 = unlimited)")
	fs.String("config", "", "path to an optional config file")
	if err := v.BindPFlags(fs); err != nil {
		return errors.Wrap(err, "config: binding flags")
	}
	return nil
}

// Load reads the config file named by the "config" flag (if any),
// merges in environment variables prefixed GOSAT_, merges in flags
// bound via BindFlags (which take precedence), and decodes the result.
func Load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix("gosat")
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "config: reading config file")
		}
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "config: building decoder")
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return Config{}, errors.Wrap(err, "config: decoding settings")
	}
	cfg.ConfigFile = v.GetString("config")

	if cfg.MaxConflicts < 0 {
		return Config{}, fmt.Errorf("config: max-conflicts must be >= 0, got %d", cfg.MaxConflicts)
	}
	return cfg, nil
}

// Apply pushes cfg's solver-relevant fields onto s.
func (cfg Config) Apply(s *solver.Solver) {
	s.SetPolarity(cfg.NegativePolarity)
	s.SetMaxConflicts(cfg.MaxConflicts)
}

// Package config loads the settings of the identicon command from flags, environment variables and an optional
// configuration file, in that order of precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, IDENTICON_OUT_DIR sets out_dir.
const EnvPrefix = "IDENTICON"

// Log configures logging.
type Log struct {
	// Level is one of trace, debug, info, warn, error, fatal or none.
	Level string `mapstructure:"level"`
	// File receives the logs instead of stdout when set.
	File string `mapstructure:"file"`
}

// Config is the configuration of the identicon command.
type Config struct {
	// OutDir is the directory the images are written to.
	OutDir string `mapstructure:"out_dir"`
	Log    Log    `mapstructure:"log"`
	// Concurrency is the number of images rendered at once.
	Concurrency int `mapstructure:"concurrency"`
	// RawNames names files after the raw input, path separators included.
	RawNames bool `mapstructure:"raw_names"`
	// GraphFile receives a Graphviz description of the generation pipeline when set.
	GraphFile string `mapstructure:"graph_file"`
	// ManifestFile receives a JSON list of the generated files when set.
	ManifestFile string `mapstructure:"manifest_file"`
	// Measure logs the average duration of every step.
	Measure bool `mapstructure:"measure"`
}

var defaults = map[string]any{
	"out_dir":       ".",
	"log.level":     "info",
	"log.file":      "",
	"concurrency":   4,
	"raw_names":     false,
	"graph_file":    "",
	"manifest_file": "",
	"measure":       false,
}

// FlagNames maps configuration keys to command line flags.
var FlagNames = map[string]string{
	"out_dir":       "out-dir",
	"log.level":     "log-level",
	"log.file":      "log-file",
	"concurrency":   "concurrency",
	"raw_names":     "raw-names",
	"graph_file":    "graph-file",
	"manifest_file": "manifest-file",
	"measure":       "measure",
}

// Load reads the configuration. Flags of cmd that are not defined are ignored, cmd may be nil.
func Load(cmd *cobra.Command, configFile string) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cmd != nil {
		for key, name := range FlagNames {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				continue
			}
			err := v.BindPFlag(key, flag)
			if err != nil {
				return Config{}, errors.Wrapf(err, "unable to bind flag %s", name)
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		err := v.ReadInConfig()
		if err != nil {
			return Config{}, errors.Wrapf(err, "unable to read config file %s", configFile)
		}
	}

	cfg := Config{}
	err := v.Unmarshal(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "unable to unmarshal config")
	}

	return cfg, nil
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Concurrency < 1 {
		return errors.Errorf("concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.OutDir == "" {
		return errors.New("out_dir must be set")
	}

	return nil
}

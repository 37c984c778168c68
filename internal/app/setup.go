package app

import (
	"io"

	"github.com/sirupsen/logrus"

	"starfield/internal/config"
	"starfield/internal/logging"
	"starfield/internal/starfield"
)

// Logger builds the tool logger from the log flags.
func (c *Config) Logger() (*logrus.Logger, io.Closer, error) {
	opts := logging.DefaultOptions()
	opts.Level = c.LogLevel
	opts.File = c.LogFile
	return logging.New(opts)
}

// Settings resolves the generator configuration. A non-zero -seed overrides
// the configured seed.
func (c *Config) Settings() (starfield.Config, error) {
	cfg, err := config.Loader{ConfigFile: c.ConfigFile, EnvFile: c.EnvFile}.Load(nil)
	if err != nil {
		return starfield.Config{}, err
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	return cfg, cfg.Validate()
}

package app

import "flag"

// Config represents the command-line parameters for the viewers.
type Config struct {
	ConfigFile  string
	EnvFile     string
	Seed        int64
	Scale       int
	TPS         int
	CameraSpeed float64
	LogLevel    string
	LogFile     string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{EnvFile: ".env", Scale: 48, TPS: 60, CameraSpeed: 6, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "yaml/toml/json settings file")
	fs.StringVar(&c.EnvFile, "env", c.EnvFile, "optional .env file with STARFIELD_* overrides")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "generation seed (0 uses the configured seed)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per world unit")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Float64Var(&c.CameraSpeed, "camera-speed", c.CameraSpeed, "camera speed in world units per second")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "rotate logs into this file instead of stderr")
}

package app

import (
	"flag"
	"strings"
)

// Config represents the command-line parameters for the GUI application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Opts  optList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Var(&c.Opts, "opt", "simulation option in key=value form (repeatable)")
}

// Options converts the collected -opt pairs into the map consumed by
// simulation factories. Malformed entries are ignored.
func (c *Config) Options() map[string]string {
	if len(c.Opts) == 0 {
		return nil
	}
	m := make(map[string]string, len(c.Opts))
	for _, kv := range c.Opts {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			continue
		}
		m[parts[0]] = parts[1]
	}
	return m
}

// optList collects repeated -opt flags.
type optList []string

func (l *optList) String() string { return strings.Join(*l, ",") }

func (l *optList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

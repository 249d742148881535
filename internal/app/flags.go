package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Audio  bool
	Volume float64
	Params Params
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "atom", Scale: 3, TPS: 60, Volume: 0.4, Params: Params{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the configured seed)")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "play sound cues for photon events")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "sound cue volume in [0,1]")
	fs.Var(c.Params, "param", "simulation parameter as key=value (repeatable)")
}

// Params collects repeated key=value flags into the map sim factories take.
type Params map[string]string

func (p Params) String() string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + p[k]
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (p Params) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("parameter %q must have the form key=value", v)
	}
	p[key] = strings.TrimSpace(value)
	return nil
}

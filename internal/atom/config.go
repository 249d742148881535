package atom

import "strconv"

// Physics holds the spring constants of one particle role.
type Physics struct {
	Attraction float32
	Damping    float32
}

// Params holds tunable constants for the atom simulation.
type Params struct {
	Electron Physics
	Photon   Physics
	Nucleus  Physics

	CollisionThreshold float32
	// MaxPhotonAge is the number of ticks after which a photon that never
	// reached its target is discarded. Zero disables expiry.
	MaxPhotonAge int

	Intensity     float32
	DecayStep     uint8
	RingMaxRadius int
	RingValue     uint8
}

// Config controls the simulation surface and initial population.
type Config struct {
	Width  int
	Height int

	Seed uint32

	Electrons    int
	InitialShell uint8

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        320,
		Height:       240,
		Seed:         777,
		Electrons:    1,
		InitialShell: 2,
		Params: Params{
			Electron:           Physics{Attraction: 0.06, Damping: 0.7},
			Photon:             Physics{Attraction: 0.06, Damping: 0.7},
			Nucleus:            Physics{Attraction: 0.06, Damping: 0.7},
			CollisionThreshold: 10,
			MaxPhotonAge:       600,
			Intensity:          300,
			DecayStep:          4,
			RingMaxRadius:      100,
			RingValue:          70,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.Seed = uint32(parsed)
		}
	}
	if v, ok := cfg["electrons"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Electrons = parsed
		}
	}
	if v, ok := cfg["shell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= MaxShell {
			c.InitialShell = uint8(parsed)
		}
	}
	parseUnit := func(key string, dst *float32) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed > 0 && parsed < 1 {
				*dst = float32(parsed)
			}
		}
	}
	parseUnit("attraction", &c.Params.Electron.Attraction)
	parseUnit("damping", &c.Params.Electron.Damping)
	parseUnit("photon_attraction", &c.Params.Photon.Attraction)
	parseUnit("photon_damping", &c.Params.Photon.Damping)
	if v, ok := cfg["collision"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed > 0 {
			c.Params.CollisionThreshold = float32(parsed)
		}
	}
	if v, ok := cfg["max_photon_age"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MaxPhotonAge = parsed
		}
	}
	if v, ok := cfg["decay"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Params.DecayStep = uint8(parsed)
		}
	}
	if v, ok := cfg["intensity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil && parsed > 0 {
			c.Params.Intensity = float32(parsed)
		}
	}
	return c
}

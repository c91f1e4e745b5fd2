package nbody

import "strconv"

// Config controls the n-body demo: body count, initial distribution, force
// and integrator selection, physical constants, and the display viewport.
type Config struct {
	Bodies int
	Width  int
	Height int

	Distribution string
	Force        string
	Integrator   string

	G       float64
	Damping float64
	Eps     float64
	Sigma   float64

	// Extent is the world radius mapped onto the viewport half-width.
	Extent float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Bodies:       1024,
		Width:        512,
		Height:       512,
		Distribution: "cylinder",
		Force:        "gravity",
		Integrator:   "euler",
		G:            1e-5,
		Damping:      1e-5,
		Eps:          1,
		Sigma:        1e-3,
		Extent:       1.5,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Bodies = parsed
		}
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
	if v, ok := cfg["distribution"]; ok && (v == "cylinder" || v == "sphere") {
		c.Distribution = v
	}
	if v, ok := cfg["force"]; ok && (v == "gravity" || v == "lj") {
		c.Force = v
	}
	if v, ok := cfg["integrator"]; ok && (v == "euler" || v == "rk4") {
		c.Integrator = v
	}
	if v, ok := cfg["g"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.G = parsed
		}
	}
	if v, ok := cfg["damping"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Damping = parsed
		}
	}
	if v, ok := cfg["eps"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Eps = parsed
		}
	}
	if v, ok := cfg["sigma"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Sigma = parsed
		}
	}
	if v, ok := cfg["extent"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Extent = parsed
		}
	}
	return c
}

func (c Config) force() Force {
	if c.Force == "lj" {
		return LennardJones
	}
	return Gravity
}

func (c Config) integrator() Integrator {
	if c.Integrator == "rk4" {
		return RK4
	}
	return Euler
}

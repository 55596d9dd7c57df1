package snake

import "strconv"

// Config controls the board dimensions.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the standard 32x24 board (a 640x480 window cut into
// 20px cells).
func DefaultConfig() Config {
	return Config{Width: 32, Height: 24}
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
	return c
}

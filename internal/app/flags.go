package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the game shells.
type Config struct {
	Game   string
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Mute   bool
}

// NewConfig returns a Config populated with the classic board defaults: a
// 640x480 window cut into 20px cells, 20 ticks per second.
func NewConfig() *Config {
	return &Config{Game: "snake", Width: 32, Height: 24, Scale: 20, TPS: 20, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Game, "game", c.Game, "game to run (snake, autopilot)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound")
}

// Options returns the key/value map handed to game factories.
func (c *Config) Options() map[string]string {
	return map[string]string{
		"w": strconv.Itoa(c.Width),
		"h": strconv.Itoa(c.Height),
	}
}

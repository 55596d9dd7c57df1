package app

import (
	"flag"
	"testing"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-game", "autopilot", "-w", "16", "-h", "12", "-tps", "30", "-seed", "7", "-mute"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game != "autopilot" || cfg.Width != 16 || cfg.Height != 12 {
		t.Fatalf("config = %+v, want autopilot on 16x12", cfg)
	}
	if cfg.TPS != 30 || cfg.Seed != 7 || !cfg.Mute {
		t.Fatalf("config = %+v, want tps=30 seed=7 mute", cfg)
	}
}

func TestConfigOptionsCarryDimensions(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 9, 5
	opts := cfg.Options()
	if opts["w"] != "9" || opts["h"] != "5" {
		t.Fatalf("options = %v, want w=9 h=5", opts)
	}
}

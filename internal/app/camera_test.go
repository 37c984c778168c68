package app

import (
	"flag"
	"testing"

	"starfield/internal/core"
)

func TestCameraMove(t *testing.T) {
	c := Camera{Speed: 10}
	c.Move(1, 0, 0.5)
	c.Move(0, -1, 0.25)
	if c.Position != (core.Vec2{X: 5, Y: -2.5}) {
		t.Fatalf("position = %+v", c.Position)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-seed", "12", "-scale", "32", "-log-level", "debug"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 12 || cfg.Scale != 32 || cfg.LogLevel != "debug" || cfg.TPS != 60 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"starfield/internal/app"
	"starfield/internal/render"
	"starfield/internal/starfield"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, closer, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	settings, err := cfg.Settings()
	if err != nil {
		logger.WithError(err).Fatal("invalid settings")
	}
	scene := starfield.NewScene(settings, logger)
	if err := scene.Reset(settings.Seed); err != nil {
		logger.WithError(err).Fatal("generation failed")
	}

	atlas, err := render.NewAtlas(64 << 20)
	if err != nil {
		logger.WithError(err).Fatal("texture cache")
	}
	defer atlas.Close()

	game := app.New(scene, atlas, cfg, logger)
	ebiten.SetWindowTitle(fmt.Sprintf("%s (seed %d)", scene.Name(), scene.Seed()))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.WithError(err).Error("viewer stopped")
	}
}

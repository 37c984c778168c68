// Command starfield-gen generates a star field headlessly and prints its
// statistics and a text rendering. With -term it opens the terminal viewer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"starfield/internal/app"
	"starfield/internal/starfield"
	"starfield/internal/termview"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	copyMap := flag.Bool("copy", false, "copy the text rendering to the clipboard")
	term := flag.Bool("term", false, "open the interactive terminal viewer")
	placements := flag.Bool("placements", false, "list every tile placement")
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
	m := scene.Map()
	logger.WithField("seed", scene.Seed()).Info(m.Stats().String())

	if *term {
		screen, err := tcell.NewScreen()
		if err != nil {
			logger.WithError(err).Fatal("terminal unavailable")
		}
		if err := screen.Init(); err != nil {
			logger.WithError(err).Fatal("terminal unavailable")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err = termview.New(screen, scene, cfg.TPS, logger).Run(ctx)
		interrupted := ctx.Err() != nil
		stop()
		screen.Fini()
		if err != nil && !interrupted {
			logger.WithError(err).Error("terminal viewer stopped")
		}
		return
	}

	text := m.ASCII()
	fmt.Printf("seed %d\n%s\n%s", scene.Seed(), m.Stats(), text)
	if *placements {
		tiles, err := m.Placements()
		if err != nil {
			logger.WithError(err).Warn("some tiles fell back to the default asset")
		}
		for _, p := range tiles {
			fmt.Printf("%4d %-6s %-10s (%.2f, %.2f)\n", p.Index, p.Density, p.Asset, p.Position.X, p.Position.Y)
		}
		for _, s := range m.StarPlacements() {
			fmt.Printf("star %-10s (%.2f, %.2f)\n", s.Asset, s.Position.X, s.Position.Y)
		}
	}
	if *copyMap {
		if err := clipboard.WriteAll(fmt.Sprintf("seed %d\n%s", scene.Seed(), text)); err != nil {
			logger.WithError(err).Error("clipboard unavailable")
			os.Exit(1)
		}
		logger.Info("map copied to clipboard")
	}
}

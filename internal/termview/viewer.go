// Package termview shows a generated star field in a terminal. The camera
// moves with the arrow keys and both layers scroll at their configured rates.
package termview

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"starfield/internal/core"
	"starfield/internal/scroll"
	"starfield/internal/starfield"
)

var (
	styleDefault = tcell.StyleDefault
	styleDense   = tcell.StyleDefault.Foreground(tcell.ColorMediumPurple).Bold(true)
	styleSparse  = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleEmpty   = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleStar    = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// Viewer drives a tcell screen from a starfield scene.
type Viewer struct {
	screen tcell.Screen
	scene  *starfield.Scene
	scroll *scroll.Controller
	step   *core.FixedStep
	log    logrus.FieldLogger

	camera     core.Vec2
	velocity   core.Vec2
	tileAnchor core.Vec3
	starAnchor core.Vec3
	status     string
}

// New returns a viewer for a scene that has already been Reset. The screen
// must be initialised by the caller.
func New(screen tcell.Screen, scene *starfield.Scene, tps int, log logrus.FieldLogger) *Viewer {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	cfg := scene.Config()
	return &Viewer{
		screen:     screen,
		scene:      scene,
		scroll:     scroll.New(cfg.TileScrollRate, cfg.StarScrollRate),
		step:       core.NewFixedStep(tps),
		log:        log,
		tileAnchor: core.Vec3{Z: 10},
		starAnchor: core.Vec3{Z: 5},
	}
}

// Camera returns the current viewpoint.
func (v *Viewer) Camera() core.Vec2 { return v.camera }

// HandleKey applies one key press and reports whether the viewer should exit.
// Arrow keys nudge the camera by one tile edge.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	unit := v.scene.Config().ScaleFactor
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		v.velocity.X -= unit
	case tcell.KeyRight:
		v.velocity.X += unit
	case tcell.KeyUp:
		v.velocity.Y += unit
	case tcell.KeyDown:
		v.velocity.Y -= unit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'r':
			v.regenerate(v.scene.Seed())
		case 'n':
			v.regenerate(time.Now().UnixNano())
		case '0':
			v.camera = core.Vec2{}
		}
	}
	return false
}

func (v *Viewer) regenerate(seed int64) {
	if err := v.scene.Reset(seed); err != nil {
		v.log.WithError(err).Error("regeneration failed")
		v.status = err.Error()
		return
	}
	v.status = ""
}

// Tick moves the camera by any pending input and repositions both layers.
func (v *Viewer) Tick() {
	v.camera = v.camera.Add(v.velocity)
	v.velocity = core.Vec2{}
	cfg := v.scene.Config()
	v.scroll.TileRate = cfg.TileScrollRate
	v.scroll.StarRate = cfg.StarScrollRate
	v.tileAnchor, v.starAnchor = v.scroll.Advance(v.camera, v.tileAnchor, v.starAnchor)
}

// Draw renders the current frame with a status line on the bottom row.
func (v *Viewer) Draw() {
	w, h := v.screen.Size()
	v.screen.Clear()
	if h <= 0 {
		return
	}
	frame := Compose(v.scene.Map(), v.camera, v.tileAnchor, v.starAnchor, w, h-1)
	for y := 0; y < frame.H; y++ {
		for x := 0; x < frame.W; x++ {
			r := frame.At(x, y)
			v.screen.SetContent(x, y, r, nil, glyphStyle(r))
		}
	}
	status := v.status
	if status == "" {
		status = fmt.Sprintf(" seed %d  camera (%.1f, %.1f)  arrows move  r regen  n new seed  q quit",
			v.scene.Seed(), v.camera.X, v.camera.Y)
	}
	for x, r := range []rune(status) {
		if x >= w {
			break
		}
		v.screen.SetContent(x, h-1, r, nil, styleStatus)
	}
	v.screen.Show()
}

func glyphStyle(r rune) tcell.Style {
	switch r {
	case starfield.Glyph(starfield.DensityDense):
		return styleDense
	case starfield.Glyph(starfield.DensitySparse):
		return styleSparse
	case starfield.Glyph(starfield.DensityEmpty):
		return styleEmpty
	case StarGlyph:
		return styleStar
	default:
		return styleDefault
	}
}

// Run pumps input events and ticks at the fixed step until the user quits or
// ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	v.Tick()
	v.Draw()
	timer := time.NewTimer(v.step.Until())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		case <-timer.C:
			if v.step.ShouldStep() {
				v.Tick()
				v.Draw()
			}
			timer.Reset(v.step.Until())
		}
	}
}

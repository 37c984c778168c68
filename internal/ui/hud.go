//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"starfield/internal/core"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the settings panel along the right edge of the window.
type HUD struct {
	scene    core.Scene
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	status   []string

	controls    []hudControlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the scene with the given panel width.
func NewHUD(scene core.Scene, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{scene: scene, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := scene.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
		h.layoutControls()
	}
	h.intSetter, _ = scene.(core.IntParameterSetter)
	h.floatSetter, _ = scene.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetStatus replaces the free-form lines shown under the controls.
func (h *HUD) SetStatus(lines ...string) {
	if h != nil {
		h.status = lines
	}
}

// Update refreshes values from the scene and applies clicks. It reports whether
// a parameter changed.
func (h *HUD) Update(offsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = offsetX
	if provider, ok := h.scene.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the panel at its offset.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 14, G: 14, B: 22, A: 230})

	face := basicfont.Face7x13
	title := fmt.Sprintf("%s settings", strings.ToUpper(h.scene.Name()[:1])+h.scene.Name()[1:])
	text.Draw(h.panel, title, face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 215, A: 255})
	for i := range h.controls {
		h.drawControl(&h.controls[i])
	}
	y := controlsTop + len(h.controls)*lineHeight + statusSpacing
	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 150, G: 150, B: 165, A: 255})
		y += statusSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			if parsed, err := strconv.Atoi(param.Value); err == nil {
				state.intValue = parsed
				state.floatValue = float64(parsed)
				state.value = strconv.Itoa(parsed)
				state.hasValue = true
			}
		case core.ParamTypeFloat:
			if parsed, err := strconv.ParseFloat(param.Value, 64); err == nil {
				state.floatValue = parsed
				state.value = strconv.FormatFloat(parsed, 'f', 2, 64)
				state.hasValue = true
			}
		}
	}
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return false
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			return h.adjust(state, -1)
		}
		if pointInRect(px, my, state.plusRect) {
			return h.adjust(state, 1)
		}
	}
	return false
}

func (h *HUD) adjust(state *hudControlState, direction int) bool {
	ctrl := state.control
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return false
		}
		step := int(math.Max(1, math.Round(ctrl.Step)))
		target := state.intValue + direction*step
		if ctrl.HasMin && target < int(ctrl.Min) {
			target = int(ctrl.Min)
		}
		if ctrl.HasMax && target > int(ctrl.Max) {
			target = int(ctrl.Max)
		}
		return target != state.intValue && h.intSetter.SetIntParameter(ctrl.Key, target)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return false
		}
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.floatValue + float64(direction)*step
		if ctrl.HasMin {
			target = math.Max(target, ctrl.Min)
		}
		if ctrl.HasMax {
			target = math.Min(target, ctrl.Max)
		}
		return math.Abs(target-state.floatValue) > 1e-9 && h.floatSetter.SetFloatParameter(ctrl.Key, target)
	}
	return false
}

func (h *HUD) drawControl(state *hudControlState) {
	face := basicfont.Face7x13
	labelY := state.top + labelBaseline
	text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	if !state.hasValue {
		valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	}
	valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
	text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)
	h.drawButton(state.minusRect, "-", state.hasValue)
	h.drawButton(state.plusRect, "+", state.hasValue)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)

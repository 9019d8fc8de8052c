package network

import (
	"fmt"
	"strconv"
)

// Coord addresses a neuron by layer and position within the layer.
type Coord struct {
	Layer  int
	Neuron int
}

// HoverState is the neuron under the pointer. Layer and neuron are present
// together or absent together.
type HoverState struct {
	coord  Coord
	active bool
}

// NoHover is the absent hover state.
var NoHover = HoverState{}

// HoverAt returns a hover state pointing at (layer, neuron).
func HoverAt(layer, neuron int) HoverState {
	return HoverState{coord: Coord{Layer: layer, Neuron: neuron}, active: true}
}

// Coord returns the hovered coordinate and whether a neuron is hovered.
func (h HoverState) Coord() (Coord, bool) {
	return h.coord, h.active
}

// Active reports whether a neuron is hovered.
func (h HoverState) Active() bool { return h.active }

// Is reports whether the hovered neuron is exactly target.
func (h HoverState) Is(target Coord) bool {
	return h.active && h.coord == target
}

// Color is an sRGB fill with opacity.
type Color struct {
	R, G, B uint8
	A       float64
}

// CSS formats the color for a style attribute.
func (c Color) CSS() string {
	if c.A >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// WithAlpha returns c with opacity a clamped to [0,1].
func (c Color) WithAlpha(a float64) Color {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	c.A = a
	return c
}

// Palette colors.
var (
	AccentColor = Color{R: 59, G: 130, B: 246, A: 1}
	FutureColor = Color{R: 209, G: 213, B: 219, A: 1}
	PastColor   = Color{R: 147, G: 197, B: 253, A: 1}
	IdleColor   = Color{R: 156, G: 163, B: 175, A: 1}
)

// EmphasizedScale is the transform applied to the hovered neuron.
const EmphasizedScale = 1.1

// Rule names which precedence branch produced a neuron style.
type Rule string

const (
	RuleActive     Rule = "active"
	RuleActivation Rule = "activation"
	RulePast       Rule = "past"
	RuleFuture     Rule = "future"
	RuleIdle       Rule = "idle"
)

// NeuronStyle is the derived display state of one neuron.
type NeuronStyle struct {
	Color      Color
	Emphasized bool
	Rule       Rule
}

// Scale returns the neuron's render scale.
func (s NeuronStyle) Scale() float64 {
	if s.Emphasized {
		return EmphasizedScale
	}
	return 1
}

// DeriveStyle computes a neuron's color. The first matching rule wins:
//
//  1. the hovered neuron itself is drawn in the accent color, emphasized
//  2. a defined activation tints the accent color with that opacity
//  3. with a hover elsewhere, later layers are "future" and earlier layers
//     are "past"; siblings in the hovered layer fall through
//  4. everything else is idle
//
// activations is the selected example's slice for target.Layer, or nil when
// nothing is selected. Negative coordinates are idle.
func DeriveStyle(target Coord, hover HoverState, activations []float64) NeuronStyle {
	if target.Layer < 0 || target.Neuron < 0 {
		return idleStyle()
	}
	if hover.Is(target) {
		return NeuronStyle{Color: AccentColor, Emphasized: true, Rule: RuleActive}
	}
	if target.Neuron < len(activations) {
		return NeuronStyle{Color: AccentColor.WithAlpha(activations[target.Neuron]), Rule: RuleActivation}
	}
	if hovered, ok := hover.Coord(); ok {
		if target.Layer > hovered.Layer {
			return NeuronStyle{Color: FutureColor, Rule: RuleFuture}
		}
		if target.Layer < hovered.Layer {
			return NeuronStyle{Color: PastColor, Rule: RulePast}
		}
	}
	return idleStyle()
}

func idleStyle() NeuronStyle {
	return NeuronStyle{Color: IdleColor, Rule: RuleIdle}
}

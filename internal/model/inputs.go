package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Param names one of the five widget inputs.
// Keep these values stable; they are used in JSON payloads, CSV headers and preset files.
type Param string

const (
	ParamInflation Param = "inflation"
	ParamInterest  Param = "interest"
	ParamCommodity Param = "commodity"
	ParamStability Param = "stability"
	ParamFDI       Param = "fdi"
)

// Params lists the inputs in display order.
var Params = []Param{ParamInflation, ParamInterest, ParamCommodity, ParamStability, ParamFDI}

var ErrUnknownParam = errors.New("unknown parameter")

// ParseParam accepts the canonical names plus the long forms used by the page
// ("commodityDelta", "stabilityIndex", "fdiInflow").
func ParseParam(s string) (Param, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inflation":
		return ParamInflation, nil
	case "interest":
		return ParamInterest, nil
	case "commodity", "commoditydelta":
		return ParamCommodity, nil
	case "stability", "stabilityindex":
		return ParamStability, nil
	case "fdi", "fdiinflow":
		return ParamFDI, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownParam, s)
}

// Inputs is the transient model state read from the five sliders.
// Units:
// - Inflation, Interest: percent per year
// - Commodity: signed percent change of the commodity price index
// - Stability: index 0..100
// - FDI: foreign direct investment inflow, $B
type Inputs struct {
	Inflation float64 `json:"inflation" yaml:"inflation"`
	Interest  float64 `json:"interest" yaml:"interest"`
	Commodity float64 `json:"commodity" yaml:"commodity"`
	Stability float64 `json:"stability" yaml:"stability"`
	FDI       float64 `json:"fdi" yaml:"fdi"`
}

func (in Inputs) Get(p Param) (float64, error) {
	switch p {
	case ParamInflation:
		return in.Inflation, nil
	case ParamInterest:
		return in.Interest, nil
	case ParamCommodity:
		return in.Commodity, nil
	case ParamStability:
		return in.Stability, nil
	case ParamFDI:
		return in.FDI, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownParam, p)
}

// With returns a copy of in with p set to v. The value is not clamped.
func (in Inputs) With(p Param, v float64) (Inputs, error) {
	switch p {
	case ParamInflation:
		in.Inflation = v
	case ParamInterest:
		in.Interest = v
	case ParamCommodity:
		in.Commodity = v
	case ParamStability:
		in.Stability = v
	case ParamFDI:
		in.FDI = v
	default:
		return in, fmt.Errorf("%w: %q", ErrUnknownParam, p)
	}
	return in, nil
}

// Clamp pulls every field into its slider bounds.
func (in Inputs) Clamp() Inputs {
	return Inputs{
		Inflation: BoundsOf(ParamInflation).Clamp(in.Inflation),
		Interest:  BoundsOf(ParamInterest).Clamp(in.Interest),
		Commodity: BoundsOf(ParamCommodity).Clamp(in.Commodity),
		Stability: BoundsOf(ParamStability).Clamp(in.Stability),
		FDI:       BoundsOf(ParamFDI).Clamp(in.FDI),
	}
}

// Snap clamps every field and moves it onto its slider step, the way a
// range input settles a typed or stepped value.
func (in Inputs) Snap() Inputs {
	return Inputs{
		Inflation: BoundsOf(ParamInflation).Snap(in.Inflation),
		Interest:  BoundsOf(ParamInterest).Snap(in.Interest),
		Commodity: BoundsOf(ParamCommodity).Snap(in.Commodity),
		Stability: BoundsOf(ParamStability).Snap(in.Stability),
		FDI:       BoundsOf(ParamFDI).Snap(in.FDI),
	}
}

// Bounds are the min/max/step of a range input.
type Bounds struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

func (b Bounds) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Snap clamps v and rounds it to the nearest step above Min.
func (b Bounds) Snap(v float64) float64 {
	if b.Step <= 0 {
		return b.Clamp(v)
	}
	n := math.Round((b.Clamp(v) - b.Min) / b.Step)
	// Round away the float noise of n*Step, e.g. 0.30000000000000004.
	return b.Clamp(math.Round((b.Min+n*b.Step)*1e9) / 1e9)
}

var bounds = map[Param]Bounds{
	ParamInflation: {Min: 0, Max: 35, Step: 0.5},
	ParamInterest:  {Min: 0, Max: 30, Step: 0.5},
	ParamCommodity: {Min: -50, Max: 50, Step: 1},
	ParamStability: {Min: 0, Max: 100, Step: 1},
	ParamFDI:       {Min: 0, Max: 15, Step: 0.1},
}

// BoundsOf returns the slider bounds for p, or the zero Bounds for an unknown param.
func BoundsOf(p Param) Bounds {
	return bounds[p]
}

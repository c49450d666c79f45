// Package scenario sweeps one model input across its slider range and
// records the derived metrics at each step.
package scenario

import (
	"fmt"

	"algoeconomics/internal/model"
)

const (
	MinSteps     = 2
	MaxSteps     = 1001
	DefaultSteps = 11
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Values spreads steps points evenly over p's slider range, endpoints
// included, each snapped to the slider step.
func Values(p model.Param, steps int) ([]float64, error) {
	if steps < MinSteps || steps > MaxSteps {
		return nil, fmt.Errorf("steps must be in [%d, %d], got %d", MinSteps, MaxSteps, steps)
	}
	b := model.BoundsOf(p)
	if b.Max <= b.Min {
		return nil, fmt.Errorf("%w: %q", model.ErrUnknownParam, p)
	}
	out := make([]float64, steps)
	span := b.Max - b.Min
	for i := range out {
		v := b.Min + span*float64(i)/float64(steps-1)
		out[i] = b.Snap(v)
	}
	return out, nil
}

// Sweep moves p across its range in steps points, holding the other inputs
// at base.
func (e *Engine) Sweep(base model.Inputs, p model.Param, steps int) (*Result, error) {
	values, err := Values(p, steps)
	if err != nil {
		return nil, err
	}
	return e.SweepValues(base, p, values)
}

// SweepValues runs the model at each given value of p. Values are clamped
// to the slider bounds.
func (e *Engine) SweepValues(base model.Inputs, p model.Param, values []float64) (*Result, error) {
	if _, err := base.Get(p); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no values")
	}

	rows := make([]Row, 0, len(values))
	maxIdx, minIdx := 0, 0
	for idx, v := range values {
		in, err := base.With(p, model.BoundsOf(p).Clamp(v))
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", idx, err)
		}
		m := model.Derive(in)
		d := m.Deltas()
		cur, _ := in.Get(p)

		rows = append(rows, Row{
			Index: idx,
			Param: p,
			Value: cur,

			Inputs: in,

			GDPGrowth:    m.GDPGrowth,
			TradeBalance: m.TradeBalance,
			ClimateScore: m.ClimateScore,

			GDPDelta:     d.GDP,
			TradeDelta:   d.Trade,
			ClimateDelta: d.Climate,

			GDPClass: model.ClassificationOf(d.GDP),
		})
		if m.GDPGrowth > rows[maxIdx].GDPGrowth {
			maxIdx = idx
		}
		if m.GDPGrowth < rows[minIdx].GDPGrowth {
			minIdx = idx
		}
	}

	return &Result{
		Param:       p,
		Base:        base,
		Rows:        rows,
		MaxGDPIndex: maxIdx,
		MinGDPIndex: minIdx,
	}, nil
}

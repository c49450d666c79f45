package analysis

import (
	"sort"

	"algoeconomics/internal/model"
)

// Sensitivity is how much each metric moves for one slider step of Param,
// measured around a given point.
type Sensitivity struct {
	Param   model.Param `json:"param"`
	Step    float64     `json:"step"`
	GDP     float64     `json:"gdp"`
	Trade   float64     `json:"trade"`
	Climate float64     `json:"climate"`
}

// ComputeSensitivity measures every input around at. Each input is moved one
// slider step up, or down when already at its maximum.
func ComputeSensitivity(at model.Inputs) []Sensitivity {
	base := model.Derive(at)
	out := make([]Sensitivity, 0, len(model.Params))
	for _, p := range model.Params {
		b := model.BoundsOf(p)
		cur, _ := at.Get(p)
		step := b.Step
		if cur+step > b.Max {
			step = -step
		}
		moved, _ := at.With(p, cur+step)
		m := model.Derive(moved)
		out = append(out, Sensitivity{
			Param:   p,
			Step:    b.Step,
			GDP:     (m.GDPGrowth - base.GDPGrowth) * b.Step / step,
			Trade:   (m.TradeBalance - base.TradeBalance) * b.Step / step,
			Climate: (m.ClimateScore - base.ClimateScore) * b.Step / step,
		})
	}
	return out
}

// RankSensitivity orders inputs by the absolute effect of one step on metric.
func RankSensitivity(s []Sensitivity, by Metric) []Sensitivity {
	out := append([]Sensitivity(nil), s...)
	pick := func(x Sensitivity) float64 {
		switch by {
		case MetricTrade:
			return x.Trade
		case MetricClimate:
			return x.Climate
		}
		return x.GDP
	}
	abs := func(f float64) float64 {
		if f < 0 {
			return -f
		}
		return f
	}
	sort.SliceStable(out, func(i, j int) bool {
		return abs(pick(out[i])) > abs(pick(out[j]))
	})
	return out
}

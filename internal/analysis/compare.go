// Package analysis compares presets and measures how strongly each input
// moves the model.
package analysis

import (
	"fmt"
	"sort"

	"algoeconomics/internal/display"
	"algoeconomics/internal/model"
)

// Metric names one derived output.
type Metric string

const (
	MetricGDP     Metric = "gdp"
	MetricTrade   Metric = "trade"
	MetricClimate Metric = "climate"
)

func ParseMetric(s string) (Metric, error) {
	switch Metric(s) {
	case MetricGDP, MetricTrade, MetricClimate:
		return Metric(s), nil
	case "":
		return MetricGDP, nil
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

func (m Metric) of(x model.Metrics) float64 {
	switch m {
	case MetricTrade:
		return x.TradeBalance
	case MetricClimate:
		return x.ClimateScore
	}
	return x.GDPGrowth
}

// PresetSummary is one preset evaluated through the model.
type PresetSummary struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Inputs      model.Inputs   `json:"inputs"`
	Metrics     model.Metrics  `json:"metrics"`
	Deltas      model.Deltas   `json:"deltas"`
	Display     display.Update `json:"display"`
}

// Compare evaluates the named presets, in the order given. An empty names
// list compares every preset in set order.
func Compare(set *model.PresetSet, names []string) ([]PresetSummary, error) {
	if len(names) == 0 {
		names = set.Names()
	}
	out := make([]PresetSummary, 0, len(names))
	for _, name := range names {
		p, err := set.Get(name)
		if err != nil {
			return nil, err
		}
		u := display.Compute(p.Inputs)
		out = append(out, PresetSummary{
			Name:        p.Name,
			Description: p.Description,
			Inputs:      p.Inputs,
			Metrics:     u.Metrics,
			Deltas:      u.Deltas,
			Display:     u,
		})
	}
	return out, nil
}

// Rank sorts summaries by metric, best first. Ties keep their input order.
func Rank(summaries []PresetSummary, by Metric) []PresetSummary {
	out := append([]PresetSummary(nil), summaries...)
	sort.SliceStable(out, func(i, j int) bool {
		return by.of(out[i].Metrics) > by.of(out[j].Metrics)
	})
	return out
}

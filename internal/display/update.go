package display

import "algoeconomics/internal/model"

// Result is the formatted value and delta of one derived metric.
type Result struct {
	Value          string               `json:"value"`
	Delta          string               `json:"delta"`
	Classification model.Classification `json:"classification"`
	CSSClass       string               `json:"css_class"`
}

// Update is everything one recompute writes to the page.
type Update struct {
	Metrics model.Metrics `json:"metrics"`
	Deltas  model.Deltas  `json:"deltas"`
	GDP     Result        `json:"gdp"`
	Trade   Result        `json:"trade"`
	Climate Result        `json:"climate"`
}

// Build formats m for display.
func Build(m model.Metrics) Update {
	d := m.Deltas()
	return Update{
		Metrics: m,
		Deltas:  d,
		GDP: Result{
			Value:          Percent(m.GDPGrowth),
			Delta:          SignedFixed1(d.GDP) + "% from baseline",
			Classification: model.ClassificationOf(d.GDP),
			CSSClass:       model.ClassificationOf(d.GDP).CSSClass(),
		},
		Trade: Result{
			Value:          Currency(m.TradeBalance, "B"),
			Delta:          Currency(d.Trade, "M") + " from baseline",
			Classification: model.ClassificationOf(d.Trade),
			CSSClass:       model.ClassificationOf(d.Trade).CSSClass(),
		},
		Climate: Result{
			Value:          Fixed1(m.ClimateScore),
			Delta:          SignedFixed1(d.Climate) + " points from baseline",
			Classification: model.ClassificationOf(d.Climate),
			CSSClass:       model.ClassificationOf(d.Climate).CSSClass(),
		},
	}
}

// Compute derives and formats in one step.
func Compute(in model.Inputs) Update {
	return Build(model.Derive(in))
}

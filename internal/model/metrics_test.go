package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerive_BaseInputs(t *testing.T) {
	m := Derive(BaseInputs())

	assert.InDelta(t, 4.75, m.GDPGrowth, 1e-12)
	assert.InDelta(t, -0.2, m.TradeBalance, 1e-12)
	assert.Equal(t, BaselineClimate, m.ClimateScore)

	d := m.Deltas()
	assert.InDelta(t, 0.75, d.GDP, 1e-12)
	assert.InDelta(t, 2.15, d.Trade, 1e-12)
	assert.Equal(t, 0.0, d.Climate)
}

func TestDerive_Presets(t *testing.T) {
	tests := []struct {
		name    string
		gdp     float64
		trade   float64
		climate float64
	}{
		{name: "optimistic", gdp: 7.765, trade: 1.603, climate: 77.2},
		{name: "pessimistic", gdp: 0.715, trade: -3.407, climate: 58.25},
		{name: "crisis", gdp: -2.635, trade: -6.077, climate: 50.6},
	}
	set := DefaultPresets()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := set.Get(tt.name)
			require.NoError(t, err)
			m := Derive(p.Inputs)
			assert.InDelta(t, tt.gdp, m.GDPGrowth, 1e-9)
			assert.InDelta(t, tt.trade, m.TradeBalance, 1e-9)
			assert.InDelta(t, tt.climate, m.ClimateScore, 1e-9)
		})
	}
}

func TestDerive_IsDeterministic(t *testing.T) {
	in := Inputs{Inflation: 17.5, Interest: 11, Commodity: -23, Stability: 64, FDI: 3.7}
	first := Derive(in)
	for i := 0; i < 100; i++ {
		got := Derive(in)
		assert.Equal(t, math.Float64bits(first.GDPGrowth), math.Float64bits(got.GDPGrowth))
		assert.Equal(t, math.Float64bits(first.TradeBalance), math.Float64bits(got.TradeBalance))
		assert.Equal(t, math.Float64bits(first.ClimateScore), math.Float64bits(got.ClimateScore))
	}
}

func TestDerive_InterestDoesNotMove(t *testing.T) {
	a := BaseInputs()
	b := a
	b.Interest = 29.5
	assert.Equal(t, Derive(a), Derive(b))
}

func TestClassificationOf(t *testing.T) {
	assert.Equal(t, Positive, ClassificationOf(0))
	assert.Equal(t, Positive, ClassificationOf(math.Copysign(0, -1)))
	assert.Equal(t, Positive, ClassificationOf(0.01))
	assert.Equal(t, Negative, ClassificationOf(-0.01))

	assert.Equal(t, "result-change", Positive.CSSClass())
	assert.Equal(t, "result-change negative", Negative.CSSClass())
}

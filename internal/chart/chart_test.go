package chart

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelLine(t *testing.T) {
	cfg := ModelLine()
	require.Len(t, cfg.Data.Labels, ModelPoints)
	require.Len(t, cfg.Data.Datasets, 1)
	assert.Equal(t, []float64{2.8, 3.5, 3.9, 4.2, 4.0, 4.2}, cfg.Data.Datasets[0].Data)
	assert.Equal(t, "2025 (Projected)", cfg.Data.Labels[ProjectedIndex])
}

func TestLineChart_SetPoint(t *testing.T) {
	c := NewModelChart()

	assert.True(t, c.SetPoint(ProjectedIndex, 6.1))
	assert.False(t, c.SetPoint(ModelPoints, 1))
	assert.False(t, c.SetPoint(-1, 1))

	assert.Equal(t, []float64{2.8, 3.5, 3.9, 4.2, 4.0, 6.1}, c.Series())
	assert.Equal(t, ModelHistory(), c.Series()[:ProjectedIndex])
}

func TestLineChart_IsolatedFromSource(t *testing.T) {
	cfg := ModelLine()
	c := NewLineChart("x", cfg)
	cfg.Data.Datasets[0].Data[0] = 99

	assert.Equal(t, 2.8, c.Series()[0])

	got := c.Config()
	got.Data.Datasets[0].Data[1] = 99
	assert.Equal(t, 3.5, c.Series()[1])
}

func TestLineChart_Update(t *testing.T) {
	c := NewModelChart()
	assert.Equal(t, 0, c.Redraws())

	c.Update(UpdateNone)
	c.Update(UpdateNone)
	assert.Equal(t, 2, c.Redraws())
	assert.Equal(t, UpdateNone, c.LastMode())
}

func TestRegional(t *testing.T) {
	assert.Equal(t, []string{"comesa", "eac", "ecowas", "sadc"}, Regions())

	eac, ok := Regional(DefaultRegion)
	require.True(t, ok)
	assert.Equal(t, "eacChart", eac.CanvasID)
	assert.Equal(t, []string{"#d4af37cc", "#3182cecc", "#38a169cc", "#e53e3ecc"}, eac.Config.Data.Datasets[0].BackgroundColor)

	_, ok = Regional("nafta")
	assert.False(t, ok)
}

func TestConfigJSON(t *testing.T) {
	raw, err := json.Marshal(Sparklines()[0].Config)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "line", decoded["type"])

	ds := decoded["data"].(map[string]any)["datasets"].([]any)[0].(map[string]any)
	assert.Equal(t, 0.0, ds["pointRadius"], "an explicit zero radius survives omitempty")
}

func TestSectionsHaveCharts(t *testing.T) {
	assert.Len(t, Sparklines(), 3)
	assert.Len(t, DashboardTrends(), 2)
	assert.Equal(t, "gdpChart", GDPBar().CanvasID)
}

package widget

import (
	"math"
	"testing"
	"time"

	"algoeconomics/internal/chart"
	"algoeconomics/internal/debounce/debouncetest"
	"algoeconomics/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	triggers []Trigger
	presets  []string
}

func (r *countingRecorder) Recomputed(t Trigger)   { r.triggers = append(r.triggers, t) }
func (r *countingRecorder) PresetApplied(n string) { r.presets = append(r.presets, n) }
func (r *countingRecorder) count(t Trigger) (n int) {
	for _, got := range r.triggers {
		if got == t {
			n++
		}
	}
	return n
}

type fixture struct {
	clock    *debouncetest.Clock
	view     *MapView
	chart    *chart.LineChart
	recorder *countingRecorder
	widget   *Widget
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		clock:    debouncetest.New(),
		view:     NewPageView(),
		chart:    chart.NewModelChart(),
		recorder: &countingRecorder{},
	}
	f.widget = New(f.view, f.chart, WithClock(f.clock), WithRecorder(f.recorder))
	t.Cleanup(f.widget.Close)
	return f
}

func TestInit_WritesEverything(t *testing.T) {
	f := newFixture(t)
	u := f.widget.Init()

	assert.Equal(t, "12.5", f.view.Value("inflationSlider"))
	assert.Equal(t, "12.5%", f.view.Text("inflationDisplay"))
	assert.Equal(t, "+15%", f.view.Text("commodityDisplay"))
	assert.Equal(t, "75", f.view.Text("stabilitySliderDisplay"))
	assert.Equal(t, "$5.2B", f.view.Text("fdiDisplay"))

	assert.Equal(t, u.GDP.Value, f.view.Text(GDPResult))
	assert.Equal(t, "68.3", f.view.Text(ClimateResult))
	assert.Equal(t, "result-change", f.view.Class(ClimateChange))

	assert.Equal(t, u.Metrics.GDPGrowth, f.chart.Series()[chart.ProjectedIndex])
	assert.Equal(t, chart.UpdateNone, f.chart.LastMode())
	assert.Equal(t, 1, f.recorder.count(TriggerInit))
}

func TestSetInput_LabelIsImmediateComputeIsDebounced(t *testing.T) {
	f := newFixture(t)
	f.widget.Init()
	before := f.view.Text(GDPResult)

	require.NoError(t, f.widget.SetInput(model.ParamInflation, 20))
	assert.Equal(t, "20%", f.view.Text("inflationDisplay"), "label must not wait for the debounce")
	assert.Equal(t, before, f.view.Text(GDPResult), "results wait for the debounce")
	assert.True(t, f.widget.Pending())

	f.clock.Advance(DefaultDelay)
	assert.NotEqual(t, before, f.view.Text(GDPResult))
	assert.Equal(t, 1, f.recorder.count(TriggerDebounced))
}

func TestSetInput_BurstRecomputesOnceWithLastValue(t *testing.T) {
	f := newFixture(t)
	f.widget.Init()
	initial := f.widget.Recomputes()

	const n = 25
	for i := 0; i < n; i++ {
		require.NoError(t, f.widget.SetInput(model.ParamStability, float64(50+i)))
		f.clock.Advance(time.Millisecond)
	}
	assert.Equal(t, "74", f.view.Text("stabilitySliderDisplay"))
	assert.Equal(t, initial, f.widget.Recomputes())

	f.clock.Advance(DefaultDelay)
	assert.Equal(t, initial+1, f.widget.Recomputes())
	assert.Equal(t, 1, f.recorder.count(TriggerDebounced))

	want := model.BaseInputs()
	want.Stability = 74
	assert.Equal(t, model.Derive(want), f.widget.Last().Metrics)

	st := f.widget.DebounceStats()
	assert.Equal(t, n, st.Triggered)
	assert.Equal(t, n-1, st.Replaced)
}

func TestSetInput_ClampsAndRejectsUnknownParam(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.widget.SetInput(model.ParamCommodity, -120))
	assert.Equal(t, -50.0, f.widget.Inputs().Commodity)
	assert.Equal(t, "-50%", f.view.Text("commodityDisplay"))

	err := f.widget.SetInput("gdp", 1)
	assert.ErrorIs(t, err, model.ErrUnknownParam)
}

func TestApplyPreset_BypassesDebounce(t *testing.T) {
	f := newFixture(t)
	f.widget.Init()

	require.NoError(t, f.widget.SetInput(model.ParamFDI, 12))
	u, err := f.widget.ApplyPreset("crisis")
	require.NoError(t, err)

	assert.False(t, f.widget.Pending(), "a preset drops the pending slider recompute")
	assert.Equal(t, "28", f.view.Value("inflationSlider"))
	assert.Equal(t, "28%", f.view.Text("inflationDisplay"))
	assert.Equal(t, "-40%", f.view.Text("commodityDisplay"))
	assert.Equal(t, "$0.5B", f.view.Text("fdiDisplay"))
	assert.Equal(t, u.GDP.Value, f.view.Text(GDPResult))
	assert.Equal(t, "result-change negative", f.view.Class(GDPChange))

	recomputes := f.widget.Recomputes()
	f.clock.Advance(time.Second)
	assert.Equal(t, recomputes, f.widget.Recomputes())
	assert.Equal(t, []string{"crisis"}, f.recorder.presets)
}

func TestApplyPreset_CrisisThenBaseRoundTrip(t *testing.T) {
	f := newFixture(t)
	want := f.widget.Init()

	_, err := f.widget.ApplyPreset("crisis")
	require.NoError(t, err)
	got, err := f.widget.ApplyPreset("base")
	require.NoError(t, err)

	assert.Equal(t, math.Float64bits(want.Metrics.GDPGrowth), math.Float64bits(got.Metrics.GDPGrowth))
	assert.Equal(t, math.Float64bits(want.Metrics.TradeBalance), math.Float64bits(got.Metrics.TradeBalance))
	assert.Equal(t, math.Float64bits(want.Metrics.ClimateScore), math.Float64bits(got.Metrics.ClimateScore))
	assert.Equal(t, want, got)
	assert.Equal(t, model.BaseInputs(), f.widget.Inputs())
}

func TestApplyPreset_Unknown(t *testing.T) {
	f := newFixture(t)
	f.widget.Init()
	writes := f.view.Writes()

	_, err := f.widget.ApplyPreset("boom")
	assert.ErrorIs(t, err, model.ErrUnknownPreset)
	assert.Equal(t, writes, f.view.Writes())
	assert.Equal(t, model.BaseInputs(), f.widget.Inputs())
}

func TestChart_OnlyProjectedPointMoves(t *testing.T) {
	f := newFixture(t)
	f.widget.Init()

	for _, name := range []string{"optimistic", "pessimistic", "crisis", "base"} {
		_, err := f.widget.ApplyPreset(name)
		require.NoError(t, err)
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, f.widget.SetInput(model.ParamInflation, float64(i*3)))
		f.clock.Advance(DefaultDelay)
	}

	series := f.chart.Series()
	require.Len(t, series, chart.ModelPoints)
	assert.Equal(t, chart.ModelHistory(), series[:chart.ProjectedIndex])
	assert.Equal(t, f.widget.Last().Metrics.GDPGrowth, series[chart.ProjectedIndex])
	assert.Equal(t, f.widget.Recomputes(), f.chart.Redraws())
}

func TestMissingTargetsAreNoOps(t *testing.T) {
	clock := debouncetest.New()
	view := NewMapView(GDPResult) // only one element on the page
	w := New(view, nil, WithClock(clock))
	defer w.Close()

	u := w.Init()
	assert.Equal(t, u.GDP.Value, view.Text(GDPResult))
	assert.Equal(t, "", view.Text(ClimateResult))

	require.NoError(t, w.SetInput(model.ParamInflation, 30))
	clock.Advance(DefaultDelay)
	assert.Equal(t, w.Last().GDP.Value, view.Text(GDPResult))

	// no view at all
	bare := New(nil, nil, WithClock(clock))
	defer bare.Close()
	assert.NotPanics(t, func() {
		bare.Init()
		_, _ = bare.ApplyPreset("optimistic")
	})
}

func TestCustomPresetSource(t *testing.T) {
	set, err := model.DefaultPresets().Merge([]model.Preset{
		{Name: "boom", Inputs: model.Inputs{Inflation: 4, Interest: 4, Commodity: 40, Stability: 90, FDI: 12}},
	})
	require.NoError(t, err)

	w := New(NewPageView(), nil, WithPresets(set), WithClock(debouncetest.New()))
	defer w.Close()

	u, err := w.ApplyPreset("boom")
	require.NoError(t, err)
	assert.Equal(t, model.Derive(model.Inputs{Inflation: 4, Interest: 4, Commodity: 40, Stability: 90, FDI: 12}), u.Metrics)
}

func TestClose_StopsDebouncedRecomputes(t *testing.T) {
	f := newFixture(t)
	f.widget.Init()
	f.widget.Close()

	require.NoError(t, f.widget.SetInput(model.ParamInflation, 3))
	f.clock.Advance(DefaultDelay)
	assert.Equal(t, 1, f.widget.Recomputes())
	assert.Equal(t, "3%", f.view.Text("inflationDisplay"))
}

func TestParamForSlider(t *testing.T) {
	p, ok := ParamForSlider("fdiSlider")
	assert.True(t, ok)
	assert.Equal(t, model.ParamFDI, p)

	_, ok = ParamForSlider("fdiDisplay")
	assert.False(t, ok)
	assert.Len(t, ElementIDs(), 16)
}

func TestClose_DropsRecomputeAlreadyFired(t *testing.T) {
	f := newFixture(t)
	f.widget.Init()
	require.NoError(t, f.widget.SetInput(model.ParamInflation, 20))

	// The timer has fired and handed over the callback, but it has not
	// taken the lock yet.
	f.widget.mu.Lock()
	gen := f.widget.gen
	f.widget.mu.Unlock()
	f.widget.Close()
	writes := f.view.Writes()

	f.widget.debouncedRecompute(gen)
	assert.Equal(t, 1, f.widget.Recomputes())
	assert.Equal(t, writes, f.view.Writes())
}

func TestSetInput_SnapsToStep(t *testing.T) {
	f := newFixture(t)
	f.widget.Init()

	fdi := 5.2
	for i := 0; i < 2; i++ {
		fdi += model.BoundsOf(model.ParamFDI).Step
		require.NoError(t, f.widget.SetInput(model.ParamFDI, fdi))
	}
	assert.Equal(t, "$5.4B", f.view.Text("fdiDisplay"))
	assert.Equal(t, 5.4, f.widget.Inputs().FDI)

	require.NoError(t, f.widget.SetInput(model.ParamInflation, 12.3))
	assert.Equal(t, "12.5%", f.view.Text("inflationDisplay"))

	u := f.widget.Apply(model.Inputs{Inflation: 6.1, Interest: 5.5, Commodity: 29.6, Stability: 85, FDI: 8.46})
	assert.Equal(t, model.Inputs{Inflation: 6, Interest: 5.5, Commodity: 30, Stability: 85, FDI: 8.5}, f.widget.Inputs())
	assert.Equal(t, "8.5", f.view.Value("fdiSlider"))
	assert.Equal(t, model.Derive(f.widget.Inputs()), u.Metrics)
}

// Package widget is the controller behind the interactive economic model:
// five sliders feed three derived metrics and the projected point of a
// GDP chart.
//
// Slider labels are written on every input event. The heavier recompute
// (metrics, result text, chart redraw) goes through a Debouncer, so a drag
// collapses into one recompute per quiescent window. Presets bypass the
// debounce and recompute at once.
//
// A Widget serializes all state changes behind one mutex, including the
// debounced recompute that arrives on a timer goroutine.
package widget

import (
	"sync"
	"time"

	"algoeconomics/internal/chart"
	"algoeconomics/internal/debounce"
	"algoeconomics/internal/display"
	"algoeconomics/internal/model"

	"go.uber.org/zap"
)

// DefaultDelay is the quiescence window for slider-driven recomputes.
const DefaultDelay = 50 * time.Millisecond

// Trigger says what caused a recompute.
type Trigger string

const (
	TriggerInit      Trigger = "init"
	TriggerDebounced Trigger = "debounced"
	TriggerPreset    Trigger = "preset"
	TriggerDirect    Trigger = "direct"
)

// PresetSource supplies the current preset set. *model.PresetSet is one.
type PresetSource interface {
	Presets() *model.PresetSet
}

// Recorder observes widget activity, typically for metrics.
type Recorder interface {
	Recomputed(trigger Trigger)
	PresetApplied(name string)
}

type nopRecorder struct{}

func (nopRecorder) Recomputed(Trigger)   {}
func (nopRecorder) PresetApplied(string) {}

type Widget struct {
	mu        sync.Mutex
	inputs    model.Inputs
	view      View
	chart     Chart
	presets   PresetSource
	debouncer *debounce.Debouncer
	recorder  Recorder
	logger    *zap.Logger

	// gen invalidates debounced recomputes scheduled before a preset,
	// direct apply or Close.
	gen        uint64
	closed     bool
	last       display.Update
	recomputes int
}

type options struct {
	delay    time.Duration
	clock    debounce.Clock
	presets  PresetSource
	recorder Recorder
	logger   *zap.Logger
	inputs   *model.Inputs
}

type Option func(*options)

func WithDelay(d time.Duration) Option    { return func(o *options) { o.delay = d } }
func WithClock(c debounce.Clock) Option   { return func(o *options) { o.clock = c } }
func WithPresets(src PresetSource) Option { return func(o *options) { o.presets = src } }
func WithRecorder(r Recorder) Option      { return func(o *options) { o.recorder = r } }
func WithLogger(l *zap.Logger) Option     { return func(o *options) { o.logger = l } }
func WithInputs(in model.Inputs) Option   { return func(o *options) { o.inputs = &in } }

// New creates a widget writing to view and c. Either may be nil, in which
// case the corresponding writes are skipped. Inputs start at the base preset.
func New(view View, c Chart, opts ...Option) *Widget {
	o := options{delay: DefaultDelay}
	for _, opt := range opts {
		opt(&o)
	}
	if view == nil {
		view = nopView{}
	}
	if o.presets == nil {
		o.presets = model.DefaultPresets()
	}
	if o.recorder == nil {
		o.recorder = nopRecorder{}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	var dopts []debounce.Option
	if o.clock != nil {
		dopts = append(dopts, debounce.WithClock(o.clock))
	}

	w := &Widget{
		inputs:    model.BaseInputs(),
		view:      view,
		chart:     c,
		presets:   o.presets,
		debouncer: debounce.New(o.delay, dopts...),
		recorder:  o.recorder,
		logger:    o.logger,
	}
	if base, err := o.presets.Presets().Get(model.PresetBase); err == nil {
		w.inputs = base.Inputs
	}
	if o.inputs != nil {
		w.inputs = o.inputs.Clamp()
	}
	return w
}

// Init writes every slider and label and runs the first recompute.
func (w *Widget) Init() display.Update {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writeInputsLocked()
	return w.recomputeLocked(TriggerInit)
}

// SetInput handles one slider input event: the value is clamped to the
// slider bounds and snapped to its step, its label is written now, and a recompute is scheduled.
func (w *Widget) SetInput(p model.Param, v float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	next, err := w.inputs.With(p, model.BoundsOf(p).Snap(v))
	if err != nil {
		return err
	}
	w.inputs = next
	cur, _ := next.Get(p)
	w.view.SetText(LabelID(p), display.Label(p, cur))

	gen := w.gen
	w.debouncer.Trigger(func() { w.debouncedRecompute(gen) })
	return nil
}

func (w *Widget) debouncedRecompute(gen uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen || w.closed {
		return
	}
	w.recomputeLocked(TriggerDebounced)
}

// ApplyPreset writes all five values of the named preset and recomputes
// without waiting for the debounce window. An unknown name changes nothing.
func (w *Widget) ApplyPreset(name string) (display.Update, error) {
	p, err := w.presets.Presets().Get(name)
	if err != nil {
		return display.Update{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	u := w.applyLocked(p.Inputs, TriggerPreset)
	w.recorder.PresetApplied(p.Name)
	w.logger.Debug("preset applied", zap.String("preset", p.Name), zap.Float64("gdp_growth", u.Metrics.GDPGrowth))
	return u, nil
}

// Apply is ApplyPreset for arbitrary inputs, which are snapped to the
// sliders first.
func (w *Widget) Apply(in model.Inputs) display.Update {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.applyLocked(in.Snap(), TriggerDirect)
}

func (w *Widget) applyLocked(in model.Inputs, trigger Trigger) display.Update {
	w.debouncer.Cancel()
	w.gen++
	w.inputs = in
	w.writeInputsLocked()
	return w.recomputeLocked(trigger)
}

// Recompute runs a recompute now, dropping any pending debounced one.
func (w *Widget) Recompute() display.Update {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.debouncer.Cancel()
	w.gen++
	return w.recomputeLocked(TriggerDirect)
}

// Flush runs a pending debounced recompute immediately.
func (w *Widget) Flush() bool {
	return w.debouncer.Flush()
}

// Pending reports whether a debounced recompute is armed.
func (w *Widget) Pending() bool {
	return w.debouncer.Pending()
}

func (w *Widget) writeInputsLocked() {
	for _, p := range model.Params {
		v, _ := w.inputs.Get(p)
		w.view.SetValue(SliderID(p), display.Number(v))
		w.view.SetText(LabelID(p), display.Label(p, v))
	}
}

func (w *Widget) recomputeLocked(trigger Trigger) display.Update {
	u := display.Compute(w.inputs)

	w.view.SetText(GDPResult, u.GDP.Value)
	w.view.SetText(GDPChange, u.GDP.Delta)
	w.view.SetClass(GDPChange, u.GDP.CSSClass)

	w.view.SetText(TradeResult, u.Trade.Value)
	w.view.SetText(TradeChange, u.Trade.Delta)
	w.view.SetClass(TradeChange, u.Trade.CSSClass)

	w.view.SetText(ClimateResult, u.Climate.Value)
	w.view.SetText(ClimateChange, u.Climate.Delta)
	w.view.SetClass(ClimateChange, u.Climate.CSSClass)

	if w.chart != nil && w.chart.SetPoint(chart.ProjectedIndex, u.Metrics.GDPGrowth) {
		w.chart.Update(chart.UpdateNone)
	}

	w.last = u
	w.recomputes++
	w.recorder.Recomputed(trigger)
	return u
}

// Inputs returns the current slider values.
func (w *Widget) Inputs() model.Inputs {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inputs
}

// Last returns the most recent recompute result.
func (w *Widget) Last() display.Update {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Recomputes counts recomputes since creation.
func (w *Widget) Recomputes() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.recomputes
}

// DebounceStats exposes the debouncer counters.
func (w *Widget) DebounceStats() debounce.Stats {
	return w.debouncer.Stats()
}

// Close drops any pending recompute and ignores later slider events'
// recomputes. Labels still update.
func (w *Widget) Close() {
	w.debouncer.Stop()
	w.mu.Lock()
	w.gen++
	w.closed = true
	w.mu.Unlock()
}

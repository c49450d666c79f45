package chart

import "sync"

// LineChart is a server-side stand-in for a rendered chart instance. It owns a
// copy of its config, lets callers overwrite single points of the first
// dataset, and counts redraw requests.
type LineChart struct {
	mu       sync.RWMutex
	canvasID string
	config   Config
	redraws  int
	lastMode UpdateMode
}

// NewLineChart clones cfg; later edits to cfg do not reach the chart.
func NewLineChart(canvasID string, cfg Config) *LineChart {
	return &LineChart{canvasID: canvasID, config: cfg.Clone()}
}

// NewModelChart creates the economic-model projection chart.
func NewModelChart() *LineChart {
	return NewLineChart(ModelCanvasID, ModelLine())
}

func (c *LineChart) CanvasID() string { return c.canvasID }

// SetPoint overwrites index of the first dataset. It reports false, changing
// nothing, when the index is outside the series.
func (c *LineChart) SetPoint(index int, value float64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.config.Data.Datasets) == 0 {
		return false
	}
	data := c.config.Data.Datasets[0].Data
	if index < 0 || index >= len(data) {
		return false
	}
	data[index] = value
	return true
}

// Update records a redraw request.
func (c *LineChart) Update(mode UpdateMode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.redraws++
	c.lastMode = mode
}

// Series returns a copy of the first dataset.
func (c *LineChart) Series() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.config.Data.Datasets) == 0 {
		return nil
	}
	return append([]float64(nil), c.config.Data.Datasets[0].Data...)
}

// Config returns a copy of the current config.
func (c *LineChart) Config() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.Clone()
}

func (c *LineChart) Redraws() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.redraws
}

func (c *LineChart) LastMode() UpdateMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastMode
}

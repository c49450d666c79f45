package live

import (
	"strconv"
	"sync"

	"algoeconomics/internal/chart"
	"algoeconomics/internal/widget"
)

// view turns widget writes into pushed messages. Only the widget's own
// element ids exist on the page.
type view struct {
	present map[string]bool
	push    func(Message)
}

func newView(push func(Message)) *view {
	v := &view{present: map[string]bool{}, push: push}
	for _, id := range widget.ElementIDs() {
		v.present[id] = true
	}
	return v
}

func (v *view) write(typ, id, s string) bool {
	if !v.present[id] {
		return false
	}
	m := Message{Type: typ, ID: id}
	switch typ {
	case TypeClass:
		m.Class = s
	case TypeValue:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		m.Value = &v
	default:
		m.Text = s
	}
	v.push(m)
	return true
}

func (v *view) SetValue(id, value string) bool { return v.write(TypeValue, id, value) }
func (v *view) SetText(id, text string) bool   { return v.write(TypeText, id, text) }
func (v *view) SetClass(id, class string) bool { return v.write(TypeClass, id, class) }

// modelChart mirrors the page's projection chart. It tracks every point
// change, but redraws are only pushed once the economic-model section has
// loaded and the page has a chart to redraw.
type modelChart struct {
	mu       sync.Mutex
	line     *chart.LineChart
	push     func(Message)
	attached bool
	index    int
	value    float64
}

func newModelChart(push func(Message)) *modelChart {
	return &modelChart{line: chart.NewModelChart(), push: push, index: -1}
}

func (c *modelChart) SetPoint(index int, value float64) bool {
	if !c.line.SetPoint(index, value) {
		return false
	}
	c.mu.Lock()
	c.index, c.value = index, value
	c.mu.Unlock()
	return true
}

func (c *modelChart) Update(mode chart.UpdateMode) {
	c.line.Update(mode)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attached && c.index >= 0 {
		c.push(chartMessage(c.line.CanvasID(), c.index, c.value, mode))
	}
}

// attach pushes the section with the chart's current config and starts
// pushing redraws. Both happen under one lock so no redraw can overtake
// the section message.
func (c *modelChart) attach(section Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	section.Charts = []chart.Named{{CanvasID: c.line.CanvasID(), Config: c.line.Config()}}
	c.push(section)
	c.attached = true
}

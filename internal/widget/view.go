package widget

import (
	"sync"

	"algoeconomics/internal/chart"
)

// View is where the widget writes. Each setter reports whether the target
// element exists; a missing element makes the write a no-op.
type View interface {
	SetValue(id, value string) bool
	SetText(id, text string) bool
	SetClass(id, class string) bool
}

// Chart is the projection chart the widget mutates.
type Chart interface {
	SetPoint(index int, value float64) bool
	Update(mode chart.UpdateMode)
}

type nopView struct{}

func (nopView) SetValue(string, string) bool { return false }
func (nopView) SetText(string, string) bool  { return false }
func (nopView) SetClass(string, string) bool { return false }

// MapView is an in-memory View. Only the ids it was created with exist.
type MapView struct {
	mu      sync.RWMutex
	present map[string]bool
	values  map[string]string
	texts   map[string]string
	classes map[string]string
	writes  int
}

func NewMapView(ids ...string) *MapView {
	v := &MapView{
		present: make(map[string]bool, len(ids)),
		values:  map[string]string{},
		texts:   map[string]string{},
		classes: map[string]string{},
	}
	for _, id := range ids {
		v.present[id] = true
	}
	return v
}

// NewPageView has every element of the widget's schema.
func NewPageView() *MapView {
	return NewMapView(ElementIDs()...)
}

func (v *MapView) set(m map[string]string, id, s string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.present[id] {
		return false
	}
	m[id] = s
	v.writes++
	return true
}

func (v *MapView) SetValue(id, value string) bool { return v.set(v.values, id, value) }
func (v *MapView) SetText(id, text string) bool   { return v.set(v.texts, id, text) }
func (v *MapView) SetClass(id, class string) bool { return v.set(v.classes, id, class) }

func (v *MapView) Value(id string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.values[id]
}

func (v *MapView) Text(id string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.texts[id]
}

func (v *MapView) Class(id string) string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.classes[id]
}

// Texts returns a copy of every text written so far.
func (v *MapView) Texts() map[string]string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make(map[string]string, len(v.texts))
	for k, s := range v.texts {
		out[k] = s
	}
	return out
}

// Writes counts successful writes.
func (v *MapView) Writes() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.writes
}

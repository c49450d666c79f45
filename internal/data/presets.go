package data

import (
	"sync/atomic"

	"algoeconomics/internal/model"
)

// PresetStore holds the live preset set. Readers never block; a reload swaps
// the whole set at once.
type PresetStore struct {
	current atomic.Pointer[model.PresetSet]
}

// NewPresetStore starts with initial, or the built-ins when initial is nil.
func NewPresetStore(initial *model.PresetSet) *PresetStore {
	if initial == nil {
		initial = model.DefaultPresets()
	}
	s := &PresetStore{}
	s.current.Store(initial)
	return s
}

func (s *PresetStore) Presets() *model.PresetSet {
	return s.current.Load()
}

// Swap installs set and returns the previous one. A nil set is ignored.
func (s *PresetStore) Swap(set *model.PresetSet) *model.PresetSet {
	if set == nil {
		return s.current.Load()
	}
	return s.current.Swap(set)
}

package model

import (
	"errors"
	"fmt"
	"strings"
)

const PresetBase = "base"

var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named scenario applied atomically to all five inputs.
type Preset struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Inputs      `yaml:",inline"`
}

// BuiltinPresets returns the four scenarios shipped with the page.
func BuiltinPresets() []Preset {
	return []Preset{
		{
			Name:        PresetBase,
			Description: "Current consensus outlook",
			Inputs:      Inputs{Inflation: 12.5, Interest: 8.5, Commodity: 15, Stability: 75, FDI: 5.2},
		},
		{
			Name:        "optimistic",
			Description: "Disinflation with strong commodity and investment tailwinds",
			Inputs:      Inputs{Inflation: 6.0, Interest: 5.5, Commodity: 30, Stability: 85, FDI: 8.5},
		},
		{
			Name:        "pessimistic",
			Description: "Sticky inflation, tighter policy and weaker commodities",
			Inputs:      Inputs{Inflation: 20.0, Interest: 15.0, Commodity: -15, Stability: 60, FDI: 2.0},
		},
		{
			Name:        "crisis",
			Description: "Currency crisis with capital flight",
			Inputs:      Inputs{Inflation: 28.0, Interest: 22.0, Commodity: -40, Stability: 45, FDI: 0.5},
		},
	}
}

// BaseInputs returns the inputs of the built-in base preset.
func BaseInputs() Inputs {
	return BuiltinPresets()[0].Inputs
}

// PresetSet is an immutable, ordered collection of presets.
// It always contains PresetBase.
type PresetSet struct {
	order  []string
	byName map[string]Preset
}

// NewPresetSet builds a set from presets. A later preset with the same name
// replaces an earlier one but keeps the earlier position.
func NewPresetSet(presets ...Preset) (*PresetSet, error) {
	s := &PresetSet{byName: make(map[string]Preset, len(presets))}
	for i, p := range presets {
		p.Name = strings.TrimSpace(p.Name)
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d: name is required", i)
		}
		if _, exists := s.byName[p.Name]; !exists {
			s.order = append(s.order, p.Name)
		}
		s.byName[p.Name] = p
	}
	if _, ok := s.byName[PresetBase]; !ok {
		return nil, fmt.Errorf("preset set must contain %q", PresetBase)
	}
	return s, nil
}

// DefaultPresets returns the built-in set.
func DefaultPresets() *PresetSet {
	s, err := NewPresetSet(BuiltinPresets()...)
	if err != nil {
		panic(err)
	}
	return s
}

// Merge returns a new set with overrides layered on top of s.
func (s *PresetSet) Merge(overrides []Preset) (*PresetSet, error) {
	all := s.All()
	all = append(all, overrides...)
	return NewPresetSet(all...)
}

func (s *PresetSet) Get(name string) (Preset, error) {
	p, ok := s.byName[strings.TrimSpace(name)]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

func (s *PresetSet) Names() []string {
	return append([]string(nil), s.order...)
}

func (s *PresetSet) All() []Preset {
	out := make([]Preset, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

func (s *PresetSet) Len() int { return len(s.order) }

// Presets lets a fixed set act as a preset source.
func (s *PresetSet) Presets() *PresetSet { return s }

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"algoeconomics/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk preset file shape (YAML).
type Config struct {
	// Optional: load presets from another YAML first (e.g. a shared scenarios file).
	// Records in this file override included records with the same name.
	Include string         `yaml:"include"`
	Presets []PresetConfig `yaml:"presets"`
}

// PresetConfig is one preset record. Unset values inherit from the built-in
// preset of the same name; a record introducing a new name must set all five.
type PresetConfig struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Inflation   *float64 `yaml:"inflation"`
	Interest    *float64 `yaml:"interest"`
	Commodity   *float64 `yaml:"commodity"`
	Stability   *float64 `yaml:"stability"`
	FDI         *float64 `yaml:"fdi"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges the file and its include, but does not
// validate the result.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.Include != "" {
		includePath := c.Include
		if !filepath.IsAbs(includePath) {
			// Relative to the including file when it exists there, else to cwd.
			cand := filepath.Join(filepath.Dir(path), includePath)
			if _, err := os.Stat(cand); err == nil {
				includePath = cand
			}
		}
		included, err := loadPresetsFile(includePath)
		if err != nil {
			return nil, fmt.Errorf("include %s: %w", c.Include, err)
		}
		c.Presets = MergePresets(included, c.Presets)
	}
	return &c, nil
}

type presetsFileWrapper struct {
	Presets []PresetConfig `yaml:"presets"`
}

func loadPresetsFile(path string) ([]PresetConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w presetsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	return w.Presets, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	_, err := c.PresetSet(model.DefaultPresets())
	return err
}

// PresetSet layers the file's presets over base.
func (c *Config) PresetSet(base *model.PresetSet) (*model.PresetSet, error) {
	out := make([]model.Preset, 0, len(c.Presets))
	for i, pc := range c.Presets {
		if pc.Name == "" {
			return nil, fmt.Errorf("presets[%d]: name is required", i)
		}
		p, err := pc.resolve(base)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", pc.Name, err)
		}
		out = append(out, p)
	}
	return base.Merge(out)
}

func (pc PresetConfig) resolve(base *model.PresetSet) (model.Preset, error) {
	existing, err := base.Get(pc.Name)
	isNew := errors.Is(err, model.ErrUnknownPreset)
	if err != nil && !isNew {
		return model.Preset{}, err
	}

	p := existing
	p.Name = pc.Name
	if pc.Description != "" {
		p.Description = pc.Description
	}
	fields := []struct {
		param model.Param
		value *float64
	}{
		{model.ParamInflation, pc.Inflation},
		{model.ParamInterest, pc.Interest},
		{model.ParamCommodity, pc.Commodity},
		{model.ParamStability, pc.Stability},
		{model.ParamFDI, pc.FDI},
	}
	for _, f := range fields {
		if f.value == nil {
			if isNew {
				return model.Preset{}, fmt.Errorf("%s is required for a new preset", f.param)
			}
			continue
		}
		b := model.BoundsOf(f.param)
		if *f.value < b.Min || *f.value > b.Max {
			return model.Preset{}, fmt.Errorf("%s %g outside [%g, %g]", f.param, *f.value, b.Min, b.Max)
		}
		if p.Inputs, err = p.Inputs.With(f.param, *f.value); err != nil {
			return model.Preset{}, err
		}
	}
	return p, nil
}

// MergePresets overlays override records onto base by name. Set fields of an
// override win; records with new names are appended.
func MergePresets(base, override []PresetConfig) []PresetConfig {
	out := append([]PresetConfig(nil), base...)
	index := make(map[string]int, len(out))
	for i, p := range out {
		index[p.Name] = i
	}
	for _, o := range override {
		i, ok := index[o.Name]
		if !ok {
			index[o.Name] = len(out)
			out = append(out, o)
			continue
		}
		out[i] = MergePreset(out[i], o)
	}
	return out
}

// MergePreset overlays the set fields of override onto base.
func MergePreset(base, override PresetConfig) PresetConfig {
	out := base
	if override.Description != "" {
		out.Description = override.Description
	}
	if override.Inflation != nil {
		out.Inflation = override.Inflation
	}
	if override.Interest != nil {
		out.Interest = override.Interest
	}
	if override.Commodity != nil {
		out.Commodity = override.Commodity
	}
	if override.Stability != nil {
		out.Stability = override.Stability
	}
	if override.FDI != nil {
		out.FDI = override.FDI
	}
	return out
}

// LoadPresetSet is Load followed by PresetSet over the built-ins.
func LoadPresetSet(path string) (*model.PresetSet, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	return c.PresetSet(model.DefaultPresets())
}

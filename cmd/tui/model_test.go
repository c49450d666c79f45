package main

import (
	"testing"
	"time"

	"algoeconomics/internal/display"
	"algoeconomics/internal/model"
	"algoeconomics/internal/widget"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_FocusWraps(t *testing.T) {
	m := newModel(model.DefaultPresets())
	defer m.close()

	m.Update(key("up"))
	assert.Equal(t, model.ParamFDI, m.focused())
	m.Update(key("down"))
	m.Update(key("down"))
	assert.Equal(t, model.ParamInterest, m.focused())
}

func TestModel_NudgeMovesFocusedSlider(t *testing.T) {
	m := newModel(model.DefaultPresets())
	defer m.close()

	m.Update(key("right"))
	assert.Equal(t, 13.0, m.widget.Inputs().Inflation)
	assert.Equal(t, display.Label(model.ParamInflation, 13), m.page.Text(widget.LabelID(model.ParamInflation)),
		"label updates before the recompute")

	require.Eventually(t, func() bool {
		return m.page.Text(widget.GDPResult) == m.widget.Last().GDP.Value && !m.widget.Pending()
	}, time.Second, 5*time.Millisecond)
	in, _ := model.BaseInputs().With(model.ParamInflation, 13)
	assert.Equal(t, display.Compute(in).GDP.Value, m.page.Text(widget.GDPResult))

	for i := 0; i < 100; i++ {
		m.Update(key("left"))
	}
	assert.Equal(t, 0.0, m.widget.Inputs().Inflation, "clamped at the slider minimum")
}

func TestModel_NudgeStaysOnStep(t *testing.T) {
	m := newModel(model.DefaultPresets())
	defer m.close()

	m.Update(key("up"))
	require.Equal(t, model.ParamFDI, m.focused())
	m.Update(key("right"))
	m.Update(key("right"))
	assert.Equal(t, 5.4, m.widget.Inputs().FDI)
	assert.Equal(t, "$5.4B", m.page.Text(widget.LabelID(model.ParamFDI)))
}

func TestModel_PresetKeys(t *testing.T) {
	m := newModel(model.DefaultPresets())
	defer m.close()

	m.Update(key("4"))
	crisis, err := model.DefaultPresets().Get("crisis")
	require.NoError(t, err)
	assert.Equal(t, crisis.Inputs, m.widget.Inputs())
	assert.Equal(t, display.Compute(crisis.Inputs).GDP.Value, m.page.Text(widget.GDPResult))
	assert.Contains(t, m.View(), "applied preset crisis")

	m.Update(key("9"))
	assert.Equal(t, crisis.Inputs, m.widget.Inputs(), "no ninth preset")
}

func TestModel_Quit(t *testing.T) {
	m := newModel(model.DefaultPresets())
	defer m.close()

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_RecomputeKeepsListening(t *testing.T) {
	m := newModel(model.DefaultPresets())
	defer m.close()

	cmd := m.Init()
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, recomputedMsg{trigger: widget.TriggerInit}, msg)

	_, next := m.Update(msg)
	assert.NotNil(t, next)
}

func TestSparkline(t *testing.T) {
	assert.Empty(t, sparkline(nil))
	s := sparkline([]float64{1, 2, 3})
	assert.Contains(t, s, "▁")
	assert.Contains(t, s, "3.0")
}

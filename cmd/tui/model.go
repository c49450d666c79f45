package main

import (
	"fmt"

	"algoeconomics/internal/chart"
	"algoeconomics/internal/model"
	"algoeconomics/internal/widget"

	tea "github.com/charmbracelet/bubbletea"
)

// recomputedMsg is delivered after every widget recompute, including the
// debounced ones that fire off the UI goroutine.
type recomputedMsg struct {
	trigger widget.Trigger
}

// notifier forwards recomputes to the program without ever blocking the
// widget.
type notifier struct {
	ch chan widget.Trigger
}

func (n notifier) Recomputed(t widget.Trigger) {
	select {
	case n.ch <- t:
	default:
	}
}

func (notifier) PresetApplied(string) {}

func waitForRecompute(ch <-chan widget.Trigger) tea.Cmd {
	return func() tea.Msg {
		return recomputedMsg{trigger: <-ch}
	}
}

type tuiModel struct {
	widget  *widget.Widget
	page    *widget.MapView
	chart   *chart.LineChart
	presets []string
	events  chan widget.Trigger

	focus  int
	status string
	width  int
}

func newModel(set *model.PresetSet) *tuiModel {
	m := &tuiModel{
		page:    widget.NewPageView(),
		chart:   chart.NewModelChart(),
		presets: set.Names(),
		events:  make(chan widget.Trigger, 16),
	}
	m.widget = widget.New(m.page, m.chart,
		widget.WithPresets(set),
		widget.WithRecorder(notifier{ch: m.events}))
	m.widget.Init()
	return m
}

func (m *tuiModel) close() {
	m.widget.Close()
}

func (m *tuiModel) Init() tea.Cmd {
	return waitForRecompute(m.events)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case recomputedMsg:
		return m, waitForRecompute(m.events)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.focus = (m.focus + len(model.Params) - 1) % len(model.Params)
	case "down", "j", "tab":
		m.focus = (m.focus + 1) % len(model.Params)
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(1)
	case "shift+left", "H":
		m.nudge(-10)
	case "shift+right", "L":
		m.nudge(10)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			m.applyPreset(int(key[0] - '1'))
		}
	}
	return m, nil
}

func (m *tuiModel) focused() model.Param {
	return model.Params[m.focus]
}

// nudge moves the focused slider by steps slider steps.
func (m *tuiModel) nudge(steps int) {
	p := m.focused()
	cur, _ := m.widget.Inputs().Get(p)
	next := cur + float64(steps)*model.BoundsOf(p).Step
	if err := m.widget.SetInput(p, next); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m *tuiModel) applyPreset(i int) {
	if i < 0 || i >= len(m.presets) {
		return
	}
	name := m.presets[i]
	if _, err := m.widget.ApplyPreset(name); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("applied preset %s", name)
}

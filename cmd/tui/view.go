package main

import (
	"fmt"
	"math"
	"strings"

	"algoeconomics/internal/model"
	"algoeconomics/internal/widget"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGold  = lipgloss.Color("#d4af37")
	colorGreen = lipgloss.Color("#38a169")
	colorRed   = lipgloss.Color("#e53e3e")
	colorMuted = lipgloss.Color("#718096")

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGold)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	positiveStyle = lipgloss.NewStyle().Foreground(colorGreen)
	negativeStyle = lipgloss.NewStyle().Foreground(colorRed)
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 1)
)

const (
	sliderWidth = 30
	sparkBlocks = "▁▂▃▄▅▆▇█"
)

var paramNames = map[model.Param]string{
	model.ParamInflation: "Inflation",
	model.ParamInterest:  "Interest rate",
	model.ParamCommodity: "Commodity prices",
	model.ParamStability: "Political stability",
	model.ParamFDI:       "FDI inflow",
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("African Economic Impact Model"))
	b.WriteString("\n\n")

	inputs := m.widget.Inputs()
	var sliders strings.Builder
	for i, p := range model.Params {
		v, _ := inputs.Get(p)
		name := fmt.Sprintf("%-20s", paramNames[p])
		marker := "  "
		if i == m.focus {
			marker = "> "
			name = focusStyle.Render(name)
		}
		fmt.Fprintf(&sliders, "%s%s %s %s\n", marker, name, slider(p, v), m.page.Text(widget.LabelID(p)))
	}
	b.WriteString(panelStyle.Render(strings.TrimRight(sliders.String(), "\n")))
	b.WriteString("\n\n")

	results := strings.Join([]string{
		m.result("GDP growth", widget.GDPResult, widget.GDPChange),
		m.result("Trade balance", widget.TradeResult, widget.TradeChange),
		m.result("Climate score", widget.ClimateResult, widget.ClimateChange),
	}, "\n")
	b.WriteString(panelStyle.Render(results))
	b.WriteString("\n\n")

	b.WriteString(panelStyle.Render("GDP growth %  " + sparkline(m.chart.Series())))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	var keys []string
	for i, name := range m.presets {
		if i >= 9 {
			break
		}
		keys = append(keys, fmt.Sprintf("%d %s", i+1, name))
	}
	b.WriteString(mutedStyle.Render("↑/↓ select  ←/→ adjust  " + strings.Join(keys, "  ") + "  q quit"))
	return b.String()
}

func (m *tuiModel) result(label, valueID, changeID string) string {
	style := positiveStyle
	if strings.Contains(m.page.Class(changeID), string(model.Negative)) {
		style = negativeStyle
	}
	return fmt.Sprintf("%-14s %-9s %s", label, m.page.Text(valueID), style.Render(m.page.Text(changeID)))
}

func slider(p model.Param, v float64) string {
	b := model.BoundsOf(p)
	pos := int(math.Round((v - b.Min) / (b.Max - b.Min) * float64(sliderWidth-1)))
	pos = max(0, min(sliderWidth-1, pos))
	return "[" + strings.Repeat("─", pos) + "●" + strings.Repeat("─", sliderWidth-1-pos) + "]"
}

// sparkline draws series with the last point, the projection, highlighted.
func sparkline(series []float64) string {
	if len(series) == 0 {
		return ""
	}
	lo, hi := series[0], series[0]
	for _, v := range series {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	blocks := []rune(sparkBlocks)
	var b strings.Builder
	for i, v := range series {
		idx := 0
		if hi > lo {
			idx = int(math.Round((v - lo) / (hi - lo) * float64(len(blocks)-1)))
		}
		s := string(blocks[idx])
		if i == len(series)-1 {
			s = focusStyle.Render(s)
		}
		b.WriteString(s)
	}
	fmt.Fprintf(&b, "  %.1f", series[len(series)-1])
	return b.String()
}

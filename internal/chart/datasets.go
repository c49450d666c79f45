package chart

import "sort"

// Model chart layout: five historical points and one projection.
const (
	ModelCanvasID  = "modelChart"
	ModelPoints    = 6
	ProjectedIndex = 5
)

var (
	modelLabels     = []string{"2020", "2021", "2022", "2023", "2024", "2025 (Projected)"}
	modelHistorical = []float64{2.8, 3.5, 3.9, 4.2, 4.0}
	modelProjected  = 4.2
)

// ModelHistory returns the fixed historical GDP growth points.
func ModelHistory() []float64 {
	return append([]float64(nil), modelHistorical...)
}

// ModelLine is the economic-model GDP projection chart.
func ModelLine() Config {
	data := append(ModelHistory(), modelProjected)
	return Config{
		Type: TypeLine,
		Data: Data{
			Labels: append([]string(nil), modelLabels...),
			Datasets: []Dataset{{
				Label:           "GDP Growth %",
				Data:            data,
				BorderColor:     "#d4af37",
				BackgroundColor: "rgba(212, 175, 55, 0.1)",
				BorderWidth:     3,
				Fill:            true,
				Tension:         0.4,
			}},
		},
		Options: Options{
			Responsive:          true,
			MaintainAspectRatio: boolPtr(false),
			Animation:           Animation{Duration: 500},
			Plugins: Plugins{
				Legend:  Legend{Display: true, LabelsColor: "#e6e8ef"},
				Tooltip: Tooltip{Format: "%s: %.1f%%"},
			},
			Scales: Scales{
				X: &Axis{GridColor: "rgba(255, 255, 255, 0.1)", TickColor: "#a9afc7"},
				Y: &Axis{
					GridColor:  "rgba(255, 255, 255, 0.1)",
					TickColor:  "#a9afc7",
					TickSuffix: "%",
					Min:        floatPtr(0),
					Max:        floatPtr(8),
				},
			},
		},
	}
}

type sparkline struct {
	canvasID string
	data     []float64
}

var citySparklines = []sparkline{
	{canvasID: "lagosChart", data: []float64{65, 59, 80, 81, 76, 75, 80}},
	{canvasID: "nairobiChart", data: []float64{45, 55, 65, 75, 80, 85, 90}},
	{canvasID: "johannesburgChart", data: []float64{80, 75, 70, 65, 60, 65, 70}},
}

// Sparklines are the small city trend charts of the african-markets section.
func Sparklines() []Named {
	out := make([]Named, 0, len(citySparklines))
	for _, city := range citySparklines {
		out = append(out, Named{
			CanvasID: city.canvasID,
			Config: Config{
				Type: TypeLine,
				Data: Data{
					Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"},
					Datasets: []Dataset{{
						Data:            append([]float64(nil), city.data...),
						BorderColor:     "rgba(45, 80, 22, 1)",
						BackgroundColor: "rgba(45, 80, 22, 0.1)",
						BorderWidth:     2,
						Fill:            true,
						Tension:         0.4,
						PointRadius:     intPtr(0),
					}},
				},
				Options: Options{
					Responsive:          true,
					MaintainAspectRatio: boolPtr(false),
					Animation:           Animation{Duration: 750},
					Plugins: Plugins{
						Legend:  Legend{Display: false},
						Tooltip: Tooltip{Enabled: boolPtr(false)},
					},
					Scales: Scales{
						X: &Axis{Display: boolPtr(false)},
						Y: &Axis{Display: boolPtr(false)},
					},
				},
			},
		})
	}
	return out
}

// GDPBar compares headline GDP growth across five economies.
func GDPBar() Named {
	return Named{
		CanvasID: "gdpChart",
		Config: Config{
			Type: TypeBar,
			Data: Data{
				Labels: []string{"Nigeria", "Kenya", "South Africa", "Ghana", "Egypt"},
				Datasets: []Dataset{{
					Label: "GDP Growth %",
					Data:  []float64{3.2, 5.1, 1.9, 4.8, 4.5},
					BackgroundColor: []string{
						"rgba(212, 175, 55, 0.8)",
						"rgba(56, 161, 105, 0.8)",
						"rgba(49, 130, 206, 0.8)",
						"rgba(147, 51, 234, 0.8)",
						"rgba(236, 72, 153, 0.8)",
					},
					BorderWidth: 1,
				}},
			},
			Options: Options{
				Responsive: true,
				Animation:  Animation{Duration: 1000, Easing: "easeOutQuart"},
				Plugins: Plugins{
					Legend:  Legend{Display: false},
					Tooltip: Tooltip{Format: "GDP Growth: %v%%"},
				},
			},
		},
	}
}

func trendLine(canvasID, color, fill, tooltip string, labels []string, data []float64, min, max float64) Named {
	return Named{
		CanvasID: canvasID,
		Config: Config{
			Type: TypeLine,
			Data: Data{
				Labels: labels,
				Datasets: []Dataset{{
					Data:                 data,
					BorderColor:          color,
					BackgroundColor:      fill,
					BorderWidth:          2,
					Fill:                 true,
					Tension:              0.4,
					PointRadius:          intPtr(3),
					PointBackgroundColor: color,
				}},
			},
			Options: Options{
				Responsive:          true,
				MaintainAspectRatio: boolPtr(false),
				Animation:           Animation{Duration: 750},
				Plugins: Plugins{
					Legend:  Legend{Display: false},
					Tooltip: Tooltip{Format: tooltip},
				},
				Scales: Scales{
					X: &Axis{Display: boolPtr(true), HideGrid: true},
					Y: &Axis{Display: boolPtr(true), Min: floatPtr(min), Max: floatPtr(max)},
				},
			},
		},
	}
}

// DashboardTrends are the stability and investment-climate trend lines.
func DashboardTrends() []Named {
	return []Named{
		trendLine("stabilityChart", "#d4af37", "rgba(212, 175, 55, 0.1)", "Stability: %v",
			[]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
			[]float64{68.2, 69.1, 70.5, 71.2, 71.8, 72.4}, 65, 75),
		trendLine("investmentChart", "#38a169", "rgba(56, 161, 105, 0.1)", "Score: %v",
			[]string{"Q1", "Q2", "Q3", "Q4", "Q1", "Q2"},
			[]float64{62.3, 63.8, 65.1, 66.2, 67.4, 68.5}, 60, 72),
	}
}

type regional struct {
	labels []string
	data   []float64
}

// DefaultRegion is the tab shown when the regional section first loads.
const DefaultRegion = "eac"

var regionalBlocs = map[string]regional{
	"eac":    {labels: []string{"Kenya", "Tanzania", "Uganda", "Rwanda"}, data: []float64{5.5, 4.9, 5.8, 7.2}},
	"ecowas": {labels: []string{"Nigeria", "Ghana", "Côte d'Ivoire", "Senegal"}, data: []float64{3.2, 4.8, 6.5, 5.3}},
	"sadc":   {labels: []string{"South Africa", "Angola", "Zambia", "Mozambique"}, data: []float64{1.9, 2.8, 4.1, 5.8}},
	"comesa": {labels: []string{"Egypt", "Ethiopia", "Zimbabwe", "Malawi"}, data: []float64{4.5, 6.8, 3.5, 2.8}},
}

var regionalColors = []string{"#d4af37", "#3182ce", "#38a169", "#e53e3e"}

// Regions lists the regional blocs in sorted order.
func Regions() []string {
	out := make([]string, 0, len(regionalBlocs))
	for k := range regionalBlocs {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Regional is the GDP growth bar chart for one regional bloc.
func Regional(region string) (Named, bool) {
	r, ok := regionalBlocs[region]
	if !ok {
		return Named{}, false
	}
	fills := make([]string, len(regionalColors))
	for i, c := range regionalColors {
		fills[i] = c + "cc"
	}
	return Named{
		CanvasID: region + "Chart",
		Config: Config{
			Type: TypeBar,
			Data: Data{
				Labels: append([]string(nil), r.labels...),
				Datasets: []Dataset{{
					Label:           "GDP Growth (%)",
					Data:            append([]float64(nil), r.data...),
					BackgroundColor: fills,
					BorderColor:     append([]string(nil), regionalColors...),
					BorderWidth:     2,
				}},
			},
			Options: Options{
				Responsive:          true,
				MaintainAspectRatio: boolPtr(false),
				Animation:           Animation{Duration: 750},
				Plugins: Plugins{
					Legend:  Legend{Display: false},
					Tooltip: Tooltip{Format: "GDP Growth: %v%%"},
				},
				Scales: Scales{
					Y: &Axis{BeginAtZero: true, Max: floatPtr(8), TickSuffix: "%"},
				},
			},
		},
	}, true
}

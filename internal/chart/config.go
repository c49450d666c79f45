// Package chart holds the chart configurations the site renders with its
// browser charting library, and an in-process line chart the widget mutates.
//
// Config mirrors the JSON the charting library accepts, so handlers can
// serve it as-is.
package chart

// Type is the chart kind.
type Type string

const (
	TypeLine Type = "line"
	TypeBar  Type = "bar"
)

// UpdateMode selects how a redraw animates.
type UpdateMode string

const (
	// UpdateDefault animates with the chart's configured duration.
	UpdateDefault UpdateMode = ""
	// UpdateNone redraws without transition animation.
	UpdateNone UpdateMode = "none"
)

type Config struct {
	Type    Type    `json:"type"`
	Data    Data    `json:"data"`
	Options Options `json:"options"`
}

type Data struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label                string    `json:"label,omitempty"`
	Data                 []float64 `json:"data"`
	BorderColor          any       `json:"borderColor,omitempty"`
	BackgroundColor      any       `json:"backgroundColor,omitempty"`
	BorderWidth          int       `json:"borderWidth,omitempty"`
	Fill                 bool      `json:"fill,omitempty"`
	Tension              float64   `json:"tension,omitempty"`
	PointRadius          *int      `json:"pointRadius,omitempty"`
	PointBackgroundColor string    `json:"pointBackgroundColor,omitempty"`
}

type Options struct {
	Responsive          bool      `json:"responsive"`
	MaintainAspectRatio *bool     `json:"maintainAspectRatio,omitempty"`
	Animation           Animation `json:"animation"`
	Plugins             Plugins   `json:"plugins"`
	Scales              Scales    `json:"scales,omitempty"`
}

type Animation struct {
	Duration int    `json:"duration"`
	Easing   string `json:"easing,omitempty"`
}

type Plugins struct {
	Legend  Legend  `json:"legend"`
	Tooltip Tooltip `json:"tooltip"`
}

type Legend struct {
	Display     bool   `json:"display"`
	LabelsColor string `json:"labelsColor,omitempty"`
}

// Tooltip.Format is a printf-style template the page applies to the hovered
// value, standing in for a tooltip callback.
type Tooltip struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Format  string `json:"format,omitempty"`
}

type Scales struct {
	X *Axis `json:"x,omitempty"`
	Y *Axis `json:"y,omitempty"`
}

type Axis struct {
	Display     *bool    `json:"display,omitempty"`
	BeginAtZero bool     `json:"beginAtZero"`
	Min         *float64 `json:"min,omitempty"`
	Max         *float64 `json:"max,omitempty"`
	GridColor   string   `json:"gridColor,omitempty"`
	HideGrid    bool     `json:"hideGrid,omitempty"`
	TickColor   string   `json:"tickColor,omitempty"`
	TickSuffix  string   `json:"tickSuffix,omitempty"`
}

// Named pairs a config with the canvas element id it renders into.
type Named struct {
	CanvasID string `json:"canvas_id"`
	Config   Config `json:"config"`
}

// Clone deep-copies c so callers may mutate data points freely.
func (c Config) Clone() Config {
	out := c
	out.Data.Labels = append([]string(nil), c.Data.Labels...)
	out.Data.Datasets = make([]Dataset, len(c.Data.Datasets))
	for i, ds := range c.Data.Datasets {
		ds.Data = append([]float64(nil), ds.Data...)
		out.Data.Datasets[i] = ds
	}
	return out
}

func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

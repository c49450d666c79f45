package models

import (
	"algoeconomics/internal/analysis"
	"algoeconomics/internal/chart"
	"algoeconomics/internal/display"
	"algoeconomics/internal/model"
	"algoeconomics/internal/scenario"
)

// InputSpec describes one slider
type InputSpec struct {
	Param    model.Param `json:"param"`
	SliderID string      `json:"slider_id"`
	LabelID  string      `json:"label_id"`
	Min      float64     `json:"min"`
	Max      float64     `json:"max"`
	Step     float64     `json:"step"`
	Default  float64     `json:"default"`
	Label    string      `json:"label"`
}

type InputsResponse struct {
	Inputs    []InputSpec `json:"inputs"`
	ResultIDs []string    `json:"result_ids"`
	ChartID   string      `json:"chart_id"`
}

// PresetInfo represents one named scenario
type PresetInfo struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Inputs      model.Inputs           `json:"inputs"`
	Labels      map[model.Param]string `json:"labels"`
}

type PresetsResponse struct {
	Presets []PresetInfo `json:"presets"`
}

// RecomputeResponse is one model evaluation
type RecomputeResponse struct {
	Preset  string                 `json:"preset,omitempty"`
	Inputs  model.Inputs           `json:"inputs"`
	Clamped []model.Param          `json:"clamped,omitempty"` // inputs pulled into slider bounds
	Labels  map[model.Param]string `json:"labels"`
	Metrics model.Metrics          `json:"metrics"`
	Display display.Update         `json:"display"`
	Series  []float64              `json:"series"` // model chart data, projected point last
}

type CompareResponse struct {
	RankedBy    analysis.Metric          `json:"ranked_by"`
	Comparison  []analysis.PresetSummary `json:"comparison"`
	Sensitivity []analysis.Sensitivity   `json:"sensitivity"` // around the base preset
}

type SweepResponse struct {
	Preset string           `json:"preset"`
	Result *scenario.Result `json:"result"`
}

type SectionResponse struct {
	ID     string        `json:"id"`
	Charts []chart.Named `json:"charts"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUnknownPreset  = "UNKNOWN_PRESET"
	CodeUnknownSection = "UNKNOWN_SECTION"
	CodeUnknownParam   = "UNKNOWN_PARAM"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeCheckoutError  = "CHECKOUT_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

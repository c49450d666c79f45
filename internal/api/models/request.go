package models

// RecomputeRequest runs the model once. Preset, when set, is applied first;
// any Inputs fields then override it. With neither, the base preset is used.
type RecomputeRequest struct {
	Preset string         `json:"preset,omitempty"`
	Inputs *InputsPayload `json:"inputs,omitempty"`
}

// InputsPayload is a partial set of slider values. Omitted fields keep the
// preset's value.
type InputsPayload struct {
	Inflation *float64 `json:"inflation,omitempty"`
	Interest  *float64 `json:"interest,omitempty"`
	Commodity *float64 `json:"commodity,omitempty"`
	Stability *float64 `json:"stability,omitempty"`
	FDI       *float64 `json:"fdi,omitempty"`
}

// CompareRequest evaluates several presets side by side
type CompareRequest struct {
	Presets []string `json:"presets,omitempty"` // empty = all presets
	RankBy  string   `json:"rank_by,omitempty"` // "gdp" (default), "trade", "climate"
}

// SweepRequest represents the query of GET /api/v1/model/sweep
type SweepRequest struct {
	Param  string `form:"param" binding:"required"`
	Steps  int    `form:"steps,omitempty"`  // default: 11
	Preset string `form:"preset,omitempty"` // base of the sweep, default: base
	Format string `form:"format,omitempty"` // "json" (default) or "csv"
}

// CheckoutRequest is the body of POST /api/checkout
type CheckoutRequest struct {
	PriceID string `json:"priceId"`
}

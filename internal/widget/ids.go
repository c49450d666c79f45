package widget

import (
	"algoeconomics/internal/chart"
	"algoeconomics/internal/model"
)

// Element ids the page exposes to the widget.
const (
	GDPResult     = "gdpResult"
	GDPChange     = "gdpChange"
	TradeResult   = "tradeResult"
	TradeChange   = "tradeChange"
	ClimateResult = "climateResult"
	ClimateChange = "climateChange"
	ModelChart    = chart.ModelCanvasID
)

type inputElement struct {
	slider string
	label  string
}

var inputElements = map[model.Param]inputElement{
	model.ParamInflation: {slider: "inflationSlider", label: "inflationDisplay"},
	model.ParamInterest:  {slider: "interestSlider", label: "interestDisplay"},
	model.ParamCommodity: {slider: "commoditySlider", label: "commodityDisplay"},
	model.ParamStability: {slider: "stabilitySlider", label: "stabilitySliderDisplay"},
	model.ParamFDI:       {slider: "fdiSlider", label: "fdiDisplay"},
}

// SliderID is the range input element of p.
func SliderID(p model.Param) string { return inputElements[p].slider }

// LabelID is the element showing p's current value.
func LabelID(p model.Param) string { return inputElements[p].label }

// ParamForSlider maps a slider element id back to its param.
func ParamForSlider(id string) (model.Param, bool) {
	for p, el := range inputElements {
		if el.slider == id {
			return p, true
		}
	}
	return "", false
}

// ElementIDs lists every element id the widget writes to, chart excluded.
func ElementIDs() []string {
	ids := make([]string, 0, 2*len(model.Params)+6)
	for _, p := range model.Params {
		ids = append(ids, SliderID(p), LabelID(p))
	}
	return append(ids, GDPResult, GDPChange, TradeResult, TradeChange, ClimateResult, ClimateChange)
}

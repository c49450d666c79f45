package scenario

import (
	"algoeconomics/internal/model"
)

// Row is one point of a sweep: the inputs with one parameter moved, and
// what the model makes of them.
type Row struct {
	Index int         `json:"index"`
	Param model.Param `json:"param"`
	Value float64     `json:"value"`

	Inputs model.Inputs `json:"inputs"`

	GDPGrowth    float64 `json:"gdp_growth"`
	TradeBalance float64 `json:"trade_balance"`
	ClimateScore float64 `json:"climate_score"`

	GDPDelta     float64 `json:"gdp_delta"`
	TradeDelta   float64 `json:"trade_delta"`
	ClimateDelta float64 `json:"climate_delta"`

	GDPClass model.Classification `json:"gdp_class"`
}

type Result struct {
	Param model.Param  `json:"param"`
	Base  model.Inputs `json:"base"`
	Rows  []Row        `json:"rows"`

	// Indices into Rows of the extreme GDP outcomes.
	MaxGDPIndex int `json:"max_gdp_index"`
	MinGDPIndex int `json:"min_gdp_index"`
}

func (r *Result) MaxGDP() Row { return r.Rows[r.MaxGDPIndex] }
func (r *Result) MinGDP() Row { return r.Rows[r.MinGDPIndex] }

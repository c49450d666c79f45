package model

// Baselines each derived metric is compared against.
const (
	BaselineGDP     = 4.0
	BaselineTrade   = -2.35
	BaselineClimate = 68.3
)

// Metrics are the derived outputs of the economic model.
// Units:
// - GDPGrowth: percent per year
// - TradeBalance: $B
// - ClimateScore: index points
type Metrics struct {
	GDPGrowth    float64 `json:"gdp_growth"`
	TradeBalance float64 `json:"trade_balance"`
	ClimateScore float64 `json:"climate_score"`
}

// Deltas are the differences between Metrics and their baselines.
type Deltas struct {
	GDP     float64 `json:"gdp"`
	Trade   float64 `json:"trade"`
	Climate float64 `json:"climate"`
}

// Derive computes the three metrics from the inputs. It is a pure function:
// the interest rate is displayed but does not enter any formula.
//
// Every product is wrapped in an explicit float64 conversion so the compiler
// cannot fuse it into a multiply-add; results are bit-identical across GOARCH.
func Derive(in Inputs) Metrics {
	inflationImpact := float64((12.5 - in.Inflation) * 0.15)
	commodityImpact := float64(in.Commodity * 0.05)
	stabilityImpact := float64((in.Stability - 75) * 0.03)
	fdiImpact := float64((in.FDI - 5.2) * 0.3)

	gdp := BaselineGDP + inflationImpact + commodityImpact + stabilityImpact + fdiImpact

	trade := BaselineTrade + float64(in.Commodity*0.08) + float64(gdp*0.2)

	climate := BaselineClimate +
		float64((in.Stability-75)*0.2) +
		float64((in.FDI-5.2)*1.5) -
		float64((in.Inflation-12.5)*0.3)

	return Metrics{
		GDPGrowth:    gdp,
		TradeBalance: trade,
		ClimateScore: climate,
	}
}

func (m Metrics) Deltas() Deltas {
	return Deltas{
		GDP:     m.GDPGrowth - BaselineGDP,
		Trade:   m.TradeBalance - BaselineTrade,
		Climate: m.ClimateScore - BaselineClimate,
	}
}

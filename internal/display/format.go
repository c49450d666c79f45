// Package display turns model values into the text and classes the page shows.
package display

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"algoeconomics/internal/model"

	"github.com/shopspring/decimal"
)

// Number prints v in its shortest form ("12.5", "15", "0.5"), like a range
// input's value attribute.
func Number(v float64) string {
	return strconv.FormatFloat(normZero(v), 'f', -1, 64)
}

// Label is the immediate text next to a slider.
func Label(p model.Param, v float64) string {
	switch p {
	case model.ParamInflation, model.ParamInterest:
		return Number(v) + "%"
	case model.ParamCommodity:
		return sign(v) + Number(v) + "%"
	case model.ParamStability:
		return Number(v)
	case model.ParamFDI:
		return "$" + Number(v) + "B"
	}
	return Number(v)
}

// Labels returns the label of every input.
func Labels(in model.Inputs) map[model.Param]string {
	out := make(map[model.Param]string, len(model.Params))
	for _, p := range model.Params {
		v, _ := in.Get(p)
		out[p] = Label(p, v)
	}
	return out
}

// SignedFixed1 prints v with one decimal and an explicit "+" when v >= 0.
func SignedFixed1(v float64) string {
	v = normZero(v)
	return sign(v) + Fixed1(v)
}

// Percent prints v with one decimal and a "%" suffix, e.g. "4.8%".
func Percent(v float64) string {
	return Fixed1(v) + "%"
}

// Currency prints a signed amount with one decimal and a unit suffix,
// e.g. Currency(-0.2, "B") == "-$0.2B".
func Currency(v float64, unit string) string {
	v = normZero(v)
	s := "+"
	if v < 0 {
		s = "-"
	}
	return s + "$" + Fixed1(math.Abs(v)) + unit
}

// Fixed1 prints v with one decimal the way a browser's toFixed(1) does: the
// exact binary value is rounded half away from zero, so 4.25 prints "4.3"
// while 0.15 (stored just below) prints "0.1". Negative values that round to
// zero keep their sign ("-0.0").
func Fixed1(v float64) string {
	v = normZero(v)
	out := exactDecimal(v).StringFixed(1)
	if v < 0 && !strings.HasPrefix(out, "-") {
		out = "-" + out
	}
	return out
}

// exactDecimal is the exact value of v, which decimal.NewFromFloat is not:
// it picks the shortest decimal that parses back to v.
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	// mant / 2^k == mant * 5^k / 10^k
	k := int64(-exp)
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, pow), int32(-k))
}

func sign(v float64) string {
	if v >= 0 {
		return "+"
	}
	return ""
}

// normZero maps IEEE negative zero to positive zero.
func normZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

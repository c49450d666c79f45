package model

// Classification tags a delta for presentational styling.
// Keep these values stable; the page's stylesheet keys off them.
type Classification string

const (
	Positive Classification = "positive"
	Negative Classification = "negative"
)

// ClassificationOf treats zero as positive.
func ClassificationOf(delta float64) Classification {
	if delta >= 0 {
		return Positive
	}
	return Negative
}

// CSSClass is the class attribute written to a result-change element.
func (c Classification) CSSClass() string {
	if c == Negative {
		return "result-change negative"
	}
	return "result-change"
}

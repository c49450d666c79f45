// Package ticker holds the market ticker strip: FX pairs and stock
// exchanges, a feed that nudges them on an interval, and the HTML tracks
// the page scrolls.
package ticker

import "github.com/shopspring/decimal"

type Kind string

const (
	KindFX    Kind = "fx"
	KindStock Kind = "stock"
)

// Quote is one ticker item. FX quotes carry Flag; stock quotes carry
// Country and Volume.
type Quote struct {
	Kind          Kind            `json:"kind"`
	Symbol        string          `json:"symbol"`
	Flag          string          `json:"flag,omitempty"`
	Country       string          `json:"country,omitempty"`
	Volume        string          `json:"volume,omitempty"`
	Value         decimal.Decimal `json:"value"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"change_percent"`
}

// Up reports whether the last change was non-negative.
func (q Quote) Up() bool {
	return !q.Change.IsNegative()
}

func fx(pair, flag, rate, change, pct string) Quote {
	return Quote{
		Kind:          KindFX,
		Symbol:        pair,
		Flag:          flag,
		Value:         decimal.RequireFromString(rate),
		Change:        decimal.RequireFromString(change),
		ChangePercent: decimal.RequireFromString(pct),
	}
}

func stock(exchange, country, value, change, pct, volume string) Quote {
	return Quote{
		Kind:          KindStock,
		Symbol:        exchange,
		Country:       country,
		Volume:        volume,
		Value:         decimal.RequireFromString(value),
		Change:        decimal.RequireFromString(change),
		ChangePercent: decimal.RequireFromString(pct),
	}
}

// ExchangeRates returns the opening GBP crosses.
func ExchangeRates() []Quote {
	return []Quote{
		fx("GBP/NGN", "🇳🇬", "2087.45", "12.34", "0.59"),
		fx("GBP/KES", "🇰🇪", "163.28", "-0.87", "-0.53"),
		fx("GBP/ZAR", "🇿🇦", "23.41", "0.15", "0.64"),
		fx("GBP/GHS", "🇬🇭", "19.87", "-0.23", "-1.14"),
		fx("GBP/EGP", "🇪🇬", "63.15", "0.42", "0.67"),
		fx("GBP/TZS", "🇹🇿", "3234.56", "45.23", "1.42"),
		fx("GBP/UGX", "🇺🇬", "4678.90", "-12.34", "-0.26"),
		fx("GBP/ZMW", "🇿🇲", "32.45", "0.78", "2.46"),
	}
}

// StockExchanges returns the opening index levels.
func StockExchanges() []Quote {
	return []Quote{
		stock("JSE All Share", "ZA", "76234.58", "342.67", "0.45", "2.3B"),
		stock("NSE All Share", "NG", "102458.23", "-876.12", "-0.85", "1.1B"),
		stock("NSE 20", "KE", "1847.92", "12.45", "0.68", "456M"),
		stock("FTSE 100", "GB", "8456.73", "23.89", "0.28", "4.7B"),
		stock("EGX 30", "EG", "28934.12", "187.34", "0.65", "892M"),
		stock("GSE Composite", "GH", "3245.67", "-8.23", "-0.25", "178M"),
		stock("MASI", "MA", "13567.89", "56.12", "0.42", "234M"),
		stock("TUNINDEX", "TN", "8923.45", "-23.67", "-0.26", "89M"),
	}
}

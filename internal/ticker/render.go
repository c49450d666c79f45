package ticker

import (
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BritishEnglish)

const itemTemplates = `
{{- define "fx" -}}
<div class="ticker-item"><span class="ticker-flag">{{.Flag}}</span><span class="ticker-symbol">{{.Symbol}}</span><span class="ticker-value">{{value .Value}}</span><span class="ticker-change {{class .}}">{{percent .ChangePercent}}</span></div>
{{- end -}}
{{- define "stock" -}}
<div class="ticker-item stock-ticker-item"><span class="exchange-name">{{.Symbol}}<span class="country-badge">{{.Country}}</span></span><span class="ticker-value">{{value .Value}}</span><span class="ticker-change {{class .}}">{{percent .ChangePercent}}</span><span class="ticker-volume">Vol: {{.Volume}}</span></div>
{{- end -}}
`

var items = template.Must(template.New("items").Funcs(template.FuncMap{
	"value":   FormatValue,
	"percent": func(p decimal.Decimal) template.HTML { return template.HTML(FormatPercent(p)) },
	"class":   changeClass,
}).Parse(itemTemplates))

// FormatValue prints v with two decimals and en-GB grouping: "2,087.45".
func FormatValue(v decimal.Decimal) string {
	return printer.Sprintf("%.2f", v.Round(2).InexactFloat64())
}

// FormatPercent prints p with two decimals and a "+" only when p > 0.
func FormatPercent(p decimal.Decimal) string {
	s := p.StringFixed(2)
	if p.Round(2).IsPositive() {
		s = "+" + s
	}
	return s + "%"
}

func changeClass(q Quote) string {
	if q.Up() {
		return "positive"
	}
	return "negative"
}

// RenderItem renders a single ticker item.
func RenderItem(q Quote) (string, error) {
	name := "fx"
	if q.Kind == KindStock {
		name = "stock"
	}
	var b strings.Builder
	if err := items.ExecuteTemplate(&b, name, q); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderAll(qs []Quote) (string, error) {
	var b strings.Builder
	for _, q := range qs {
		s, err := RenderItem(q)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Tracks holds the scrolling strips. Each track repeats its items twice so
// the CSS animation can loop without a gap.
type Tracks struct {
	Exchange string `json:"exchange"`
	Stock    string `json:"stock"`
	Combined string `json:"combined"`
}

// Render builds every track from s. The combined track is FX then stocks.
func Render(s Snapshot) (Tracks, error) {
	fxHTML, err := renderAll(s.FX)
	if err != nil {
		return Tracks{}, err
	}
	stockHTML, err := renderAll(s.Stocks)
	if err != nil {
		return Tracks{}, err
	}
	combined := fxHTML + stockHTML
	return Tracks{
		Exchange: fxHTML + fxHTML,
		Stock:    stockHTML + stockHTML,
		Combined: combined + combined,
	}, nil
}

// Package render turns advisory bundles and market analyses into Markdown
// and, for the dashboard, HTML.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"agroadvisor/pkg/advisor"
	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/market"
)

//go:embed templates/*.md.tmpl
var files embed.FS

var funcs = template.FuncMap{
	"num": num,
	"f1":  func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
	"f2":  func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"f4":  func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) },
	"inc": func(i int) int { return i + 1 },
	"riskTitle": func(c market.Category) string {
		return riskTitles[c]
	},
}

var tmpl = template.Must(template.New("render").Funcs(funcs).ParseFS(files, "templates/*.md.tmpl"))

// num prints a reading without trailing zeros: 20, 6.5, 0.75.
func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

var riskTitles = map[market.Category]string{
	market.CategoryPrice:    "High Price Risk Detected",
	market.CategoryMarket:   "Market Risk Alert",
	market.CategoryEconomic: "Economic Risk Factors",
}

type farmView struct {
	Crop       crop.Crop
	Assessment advisor.Assessment
	Bundle     advisor.Bundle
	Excellent  bool
}

// FarmReport renders the yield headline, the overall assessment and every
// section present in b, in bundle order.
func FarmReport(a advisor.Assessment, b advisor.Bundle) (string, error) {
	return execute("farm", farmView{
		Crop:       b.Crop,
		Assessment: a,
		Bundle:     b,
		Excellent:  a.Outlook == advisor.Excellent,
	})
}

type marketView struct {
	market.Analysis
	BelowAverage bool
	Alerts       []market.Risk
}

// MarketReport renders the position analysis, any risk alerts and the
// strategic action plan.
func MarketReport(a market.Analysis) (string, error) {
	return execute("market", marketView{
		Analysis:     a,
		BelowAverage: a.Performance == market.Below,
		Alerts:       a.Alerts(),
	})
}

// ProfileSummary renders the optimal conditions box for a crop.
func ProfileSummary(p crop.Profile) string {
	out, err := execute("profile", p)
	if err != nil {
		// the template is static; a failure here is a programming error
		panic(err)
	}
	return out
}

func execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

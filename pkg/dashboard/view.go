// Package dashboard renders the server-side HTML views.
package dashboard

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"agroadvisor/pkg/advisor"
	"agroadvisor/pkg/crop"
	"agroadvisor/pkg/market"
	"agroadvisor/pkg/model"
)

//go:embed templates/*.html
var files embed.FS

var tmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"num": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
	"f2":  func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) },
	"f4":  func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) },
}).ParseFS(files, "templates/*.html"))

const (
	PageFarmer = "farmer"
	PageMarket = "market"
)

// Page is the data for one full dashboard render.
type Page struct {
	Active string
	Farm   ModelPanel
	Market ModelPanel
	Error  *ErrorPanel
	Farmer *FarmerView
	Trader *MarketView
}

// ModelPanel summarizes one fitted model above the views.
type ModelPanel struct {
	Title     string
	Algorithm string
	Rows      int
	Columns   int
	MSE       float64
	R2        float64
	Err       string
}

// ErrorPanel replaces the view body when a request fails.
type ErrorPanel struct {
	Message string
	Type    string
}

type Field struct {
	Name  string
	Label string
	Help  string
	Min   float64
	Max   float64
	Step  float64
	Value float64
}

type FieldGroup struct {
	Title  string
	Fields []Field
}

type FarmerView struct {
	Crops      []crop.Crop
	Selected   crop.Crop
	Conditions template.HTML
	Header     []string
	Sample     [][]string
	Groups     []FieldGroup
	Report     template.HTML
}

type MarketView struct {
	Header []string
	Sample [][]string
	Target string
	Groups []market.Group
	Report template.HTML
}

// Panel builds the info panel for a model, or an error panel when it could not be fitted.
func Panel(title, algorithm string, t *model.Trained, err error) ModelPanel {
	p := ModelPanel{Title: title, Algorithm: algorithm}
	if err != nil {
		p.Err = err.Error()
		return p
	}
	p.Rows, p.Columns = t.Rows, t.Columns
	p.MSE, p.R2 = t.Metrics.MSE, t.Metrics.R2
	return p
}

// FarmerGroups lays out the farmer sliders with the values of in and the
// optimal ranges of p as hints.
func FarmerGroups(p crop.Profile, in advisor.PredictionInput) []FieldGroup {
	hint := func(r crop.Range, unit string) string {
		return "Optimal range: " + strconv.FormatFloat(r.Min, 'f', -1, 64) + "-" + strconv.FormatFloat(r.Max, 'f', -1, 64) + unit
	}
	return []FieldGroup{
		{Title: "Environmental Parameters", Fields: []Field{
			{Name: "temperature_c", Label: "Temperature (°C)", Help: hint(p.Temperature, "°C"), Max: 50, Step: 0.1, Value: in.TemperatureC},
			{Name: "rainfall_mm", Label: "Rainfall (mm)", Help: hint(p.RainfallMM, "mm"), Max: 3000, Step: 1, Value: in.RainfallMM},
		}},
		{Title: "Soil Parameters", Fields: []Field{
			{Name: "soil_ph", Label: "Soil pH", Help: hint(p.SoilPH, ""), Max: 14, Step: 0.1, Value: in.SoilPH},
			{Name: "soil_moisture", Label: "Soil Moisture", Help: hint(p.SoilMoisture, ""), Max: 1, Step: 0.01, Value: in.SoilMoisture},
		}},
		{Title: "Irrigation & Fertilizer", Fields: []Field{
			{Name: "fertilizer_kg_ha", Label: "Fertilizer Usage (kg/ha)", Help: "Enter total fertilizer application", Max: 500, Step: 1, Value: in.FertilizerKgHa},
			{Name: "pesticide_kg_ha", Label: "Pesticide Usage (kg/ha)", Help: "Enter total pesticide application", Max: 50, Step: 0.1, Value: in.PesticideKgHa},
		}},
		{Title: "Other Parameters", Fields: []Field{
			{Name: "sustainability_score", Label: "Sustainability Score", Help: "Overall sustainability rating of farming practices", Max: 10, Step: 0.1, Value: in.SustainabilityScore},
		}},
	}
}

// WithValues returns a copy of groups whose slider defaults are the submitted values.
func WithValues(groups []market.Group, values map[string]float64) []market.Group {
	out := make([]market.Group, len(groups))
	for i, g := range groups {
		out[i] = g
		out[i].Sliders = append([]market.Slider(nil), g.Sliders...)
		for j, s := range out[i].Sliders {
			if v, ok := values[s.Feature]; ok {
				out[i].Sliders[j].Default = v
			}
		}
	}
	return out
}

func Render(w io.Writer, p Page) error {
	return tmpl.ExecuteTemplate(w, "layout", p)
}

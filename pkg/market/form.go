package market

import (
	"math"
	"strings"
	"unicode"

	"agroadvisor/pkg/model"
	"agroadvisor/pkg/validation"
)

// Slider is one market form input.
type Slider struct {
	Feature string  `json:"feature"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Default float64 `json:"default"`
	Step    float64 `json:"step"`
}

type Group struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Sliders  []Slider `json:"sliders"`
}

// Form lays out one slider per model feature, grouped by category. All four
// groups are returned in display order, even when empty.
func Form(t *model.Trained, s Schema) []Group {
	groups := make([]Group, len(Categories))
	pos := map[Category]int{}
	for i, c := range Categories {
		groups[i] = Group{Category: c, Title: c.Title()}
		pos[c] = i
	}
	for _, feat := range t.Features {
		i := pos[categoryOf(t, s, feat)]
		groups[i].Sliders = append(groups[i].Sliders, slider(feat, t.Stats[feat]))
	}
	return groups
}

// slider spans mean ± 3 sample standard deviations, floored at zero.
func slider(feature string, st model.FeatureStats) Slider {
	lo := math.Max(0, st.Mean-3*st.Std)
	hi := st.Mean + 3*st.Std
	return Slider{
		Feature: feature,
		Label:   Label(feature),
		Min:     lo,
		Max:     hi,
		Default: st.Mean,
		Step:    (hi - lo) / 100,
	}
}

// categoryOf resolves a feature through its own name first, then through the
// categorical column it was encoded from.
func categoryOf(t *model.Trained, s Schema, feature string) Category {
	for _, c := range s.Columns {
		if c.Name == feature {
			return c.Category
		}
	}
	return s.Of(t.Source(feature))
}

// Label turns Market_Price_per_ton into "Market Price Per Ton".
func Label(feature string) string {
	words := strings.Fields(strings.ReplaceAll(feature, "_", " "))
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Check rejects submitted values outside their slider bounds.
func Check(groups []Group, values map[string]float64) error {
	var errs []*validation.FieldError
	for _, g := range groups {
		for _, s := range g.Sliders {
			v, ok := values[s.Feature]
			if !ok || s.Min > s.Max {
				continue
			}
			errs = append(errs, validation.Between(s.Feature, v, s.Min, s.Max))
		}
	}
	return validation.Collect(errs...)
}

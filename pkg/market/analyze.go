package market

import (
	"fmt"

	"agroadvisor/pkg/model"
)

type Performance string

const (
	Below Performance = "below_average"
	Above Performance = "above_average"
)

// Risk counts how many submitted values of a category fall under their
// dataset mean. Alert is set when that is more than half of the group.
type Risk struct {
	Category Category `json:"category"`
	Below    int      `json:"below"`
	Total    int      `json:"total"`
	Alert    bool     `json:"alert"`
}

type Analysis struct {
	Prediction  float64            `json:"prediction"`
	TargetMean  float64            `json:"target_mean"`
	Target      string             `json:"target"`
	Score       float64            `json:"score"`
	Performance Performance        `json:"performance"`
	Risks       []Risk             `json:"risks"`
	Values      map[string]float64 `json:"values"`
}

// Alerts returns the risks that fired, in category order.
func (a Analysis) Alerts() []Risk {
	var out []Risk
	for _, r := range a.Risks {
		if r.Alert {
			out = append(out, r)
		}
	}
	return out
}

// riskCategories are the groups that can raise an alert.
var riskCategories = []Category{CategoryPrice, CategoryMarket, CategoryEconomic}

// Analyze scores a market form submission. Omitted features take their
// dataset mean; unknown ones are a *model.SchemaMismatchError.
func Analyze(t *model.Trained, s Schema, values map[string]float64) (Analysis, error) {
	row, err := t.MarketRow(values)
	if err != nil {
		return Analysis{}, err
	}
	pred, err := t.Predict(row)
	if err != nil {
		return Analysis{}, fmt.Errorf("market: predict: %w", err)
	}

	a := Analysis{
		Prediction:  pred,
		TargetMean:  t.TargetMean,
		Target:      t.Target,
		Performance: Above,
		Values:      make(map[string]float64, len(row)),
	}
	if t.TargetMean != 0 {
		a.Score = pred / t.TargetMean * 100
	}
	if pred < t.TargetMean {
		a.Performance = Below
	}

	counts := map[Category]*Risk{}
	for _, c := range riskCategories {
		counts[c] = &Risk{Category: c}
	}
	for i, feat := range t.Features {
		a.Values[feat] = row[i]
		r, ok := counts[categoryOf(t, s, feat)]
		if !ok {
			continue
		}
		r.Total++
		if row[i] < t.Stats[feat].Mean {
			r.Below++
		}
	}
	for _, c := range riskCategories {
		r := counts[c]
		r.Alert = float64(r.Below) > float64(r.Total)/2
		a.Risks = append(a.Risks, *r)
	}
	return a, nil
}

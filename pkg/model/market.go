package model

import (
	"fmt"

	"agroadvisor/pkg/dataset"
)

// TrainMarket fits the market model. The last dataset column is the target
// and every other column, identifiers included, is a feature.
func TrainMarket(f *dataset.Frame, opts Options) (*Trained, error) {
	names := f.Names()
	if len(names) < 2 {
		return nil, &SchemaMismatchError{Kind: Market, Reason: "need at least one feature and a target column"}
	}
	return fit(Market, f, names[len(names)-1], nil, opts)
}

// MarketRow lays submitted feature values out in training column order.
// Features not submitted take their dataset mean.
func (t *Trained) MarketRow(values map[string]float64) ([]float64, error) {
	if t.Kind != Market {
		return nil, fmt.Errorf("model: MarketRow called on %s model", t.Kind)
	}
	var unexpected []string
	for k := range values {
		if _, ok := t.Stats[k]; !ok {
			unexpected = append(unexpected, k)
		}
	}
	if len(unexpected) > 0 {
		return nil, &SchemaMismatchError{Kind: Market, Unexpected: unexpected}
	}
	row := make([]float64, len(t.Features))
	for i, feat := range t.Features {
		if v, ok := values[feat]; ok {
			row[i] = v
			continue
		}
		row[i] = t.Stats[feat].Mean
	}
	return row, nil
}

package model

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"agroadvisor/pkg/dataset"
	"agroadvisor/pkg/regression"
)

type Kind string

const (
	Farm   Kind = "farm"
	Market Kind = "market"
)

// FeatureStats summarizes one encoded feature column over the whole dataset.
type FeatureStats struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Options controls how a dataset is split and fitted.
type Options struct {
	Params       regression.Params
	TestFraction float64
	Seed         int64
	// Version identifies the dataset revision the model was fitted on.
	Version string
	Now     func() time.Time
}

func FarmOptions() Options {
	return Options{Params: regression.XGBoostDefaults(), TestFraction: 0.2, Seed: 42}
}

func MarketOptions() Options {
	return Options{Params: regression.GradientBoostingDefaults(), TestFraction: 0.2, Seed: 42}
}

// Trained is a fitted model together with everything needed to build its
// feature rows and describe it. Values are never mutated after construction.
type Trained struct {
	ID             uuid.UUID               `json:"id"`
	Kind           Kind                    `json:"kind"`
	Features       []string                `json:"features"`
	Target         string                  `json:"target"`
	TargetMean     float64                 `json:"target_mean"`
	Stats          map[string]FeatureStats `json:"stats"`
	Metrics        regression.Metrics      `json:"metrics"`
	Params         regression.Params       `json:"params"`
	Rows           int                     `json:"rows"`
	Columns        int                     `json:"columns"`
	Header         []string                `json:"header"`
	Sample         [][]string              `json:"sample"`
	TrainRows      int                     `json:"train_rows"`
	TestRows       int                     `json:"test_rows"`
	TrainedAt      time.Time               `json:"trained_at"`
	DatasetVersion string                  `json:"dataset_version"`

	// sources maps each encoded feature to the dataset column it came from.
	sources map[string]string
	model   *regression.Model
}

// Source returns the dataset column an encoded feature was derived from.
func (t *Trained) Source(feature string) string {
	if s, ok := t.sources[feature]; ok {
		return s
	}
	return feature
}

// Indicator reports whether feature is a one-hot column.
func (t *Trained) Indicator(feature string) bool {
	return t.Source(feature) != feature
}

// Predict scores a row built by FarmRow or MarketRow.
func (t *Trained) Predict(row []float64) (float64, error) {
	return t.model.Predict(row)
}

func fit(kind Kind, raw *dataset.Frame, target string, drop []string, opts Options) (*Trained, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	enc := dataset.OneHot(raw, target)
	y, err := enc.Numeric(target)
	if err != nil {
		return nil, &SchemaMismatchError{Kind: kind, Reason: fmt.Sprintf("target %q must be numeric", target)}
	}

	skip := map[string]bool{target: true}
	for _, d := range drop {
		skip[d] = true
	}
	var features []string
	for _, n := range enc.Names() {
		if !skip[n] {
			features = append(features, n)
		}
	}
	if len(features) == 0 {
		return nil, &SchemaMismatchError{Kind: kind, Reason: "dataset has no feature columns"}
	}
	x, err := enc.Matrix(features)
	if err != nil {
		return nil, fmt.Errorf("model: build %s matrix: %w", kind, err)
	}

	trainIdx, testIdx := dataset.Split(len(y), opts.TestFraction, opts.Seed)
	xTrain, yTrain := dataset.Take(x, y, trainIdx)
	m, err := regression.Train(xTrain, yTrain, opts.Params)
	if err != nil {
		return nil, fmt.Errorf("model: fit %s: %w", kind, err)
	}

	// Too few rows for a hold-out set: report in-sample scores instead.
	xEval, yEval := dataset.Take(x, y, testIdx)
	if len(testIdx) == 0 {
		xEval, yEval = xTrain, yTrain
	}
	met, err := regression.Evaluate(m, xEval, yEval)
	if err != nil {
		return nil, fmt.Errorf("model: evaluate %s: %w", kind, err)
	}
	met.R2 = finite(met.R2)

	rows, cols := raw.Shape()
	t := &Trained{
		ID:             uuid.New(),
		Kind:           kind,
		Features:       features,
		Target:         target,
		TargetMean:     stat.Mean(y, nil),
		Stats:          columnStats(enc, features),
		Metrics:        met,
		Params:         opts.Params,
		Rows:           rows,
		Columns:        cols,
		Header:         raw.Names(),
		Sample:         raw.Head(5),
		TrainRows:      len(trainIdx),
		TestRows:       len(testIdx),
		TrainedAt:      opts.Now().UTC(),
		DatasetVersion: opts.Version,
		sources:        indicatorSources(raw, features),
		model:          m,
	}
	return t, nil
}

func columnStats(f *dataset.Frame, names []string) map[string]FeatureStats {
	out := make(map[string]FeatureStats, len(names))
	for _, n := range names {
		v, _ := f.Numeric(n)
		mean, std := stat.MeanStdDev(v, nil)
		out[n] = FeatureStats{Mean: mean, Std: finite(std), Min: floats.Min(v), Max: floats.Max(v)}
	}
	return out
}

// indicatorSources attributes every <col>_<label> feature to its categorical column.
func indicatorSources(raw *dataset.Frame, features []string) map[string]string {
	out := map[string]string{}
	for _, c := range raw.Columns() {
		if c.Kind != dataset.Categorical {
			continue
		}
		for _, level := range dataset.Levels(c) {
			name := c.Name + "_" + level
			out[name] = c.Name
		}
	}
	for k := range out {
		if !contains(features, k) {
			delete(out, k)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// SchemaMismatchError reports a dataset or submission whose columns do not
// match what the model expects.
type SchemaMismatchError struct {
	Kind       Kind
	Missing    []string
	Unexpected []string
	Reason     string
}

func (e *SchemaMismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+sortedList(e.Missing))
	}
	if len(e.Unexpected) > 0 {
		parts = append(parts, "unexpected "+sortedList(e.Unexpected))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	return fmt.Sprintf("%s schema mismatch: %s", e.Kind, strings.Join(parts, "; "))
}

func sortedList(names []string) string {
	s := append([]string(nil), names...)
	sort.Strings(s)
	return strings.Join(s, ", ")
}

package regression

import "fmt"

// Params configures gradient boosting with squared loss.
type Params struct {
	Trees          int     `json:"trees"`
	LearningRate   float64 `json:"learning_rate"`
	MaxDepth       int     `json:"max_depth"`
	MinSamplesLeaf int     `json:"min_samples_leaf"`
	// Lambda is the L2 penalty on leaf values.
	Lambda  float64 `json:"lambda"`
	MaxBins int     `json:"max_bins"`
}

// XGBoostDefaults mirrors an unconfigured XGBRegressor with 100 estimators.
func XGBoostDefaults() Params {
	return Params{Trees: 100, LearningRate: 0.3, MaxDepth: 6, MinSamplesLeaf: 1, Lambda: 1, MaxBins: 256}
}

// GradientBoostingDefaults mirrors an unconfigured GradientBoostingRegressor.
func GradientBoostingDefaults() Params {
	return Params{Trees: 100, LearningRate: 0.1, MaxDepth: 3, MinSamplesLeaf: 1, Lambda: 0, MaxBins: 256}
}

func (p Params) validate() error {
	switch {
	case p.Trees <= 0:
		return fmt.Errorf("regression: trees must be positive, got %d", p.Trees)
	case p.LearningRate <= 0 || p.LearningRate > 1:
		return fmt.Errorf("regression: learning rate must be in (0,1], got %g", p.LearningRate)
	case p.MaxDepth <= 0:
		return fmt.Errorf("regression: max depth must be positive, got %d", p.MaxDepth)
	case p.MinSamplesLeaf <= 0:
		return fmt.Errorf("regression: min samples per leaf must be positive, got %d", p.MinSamplesLeaf)
	case p.Lambda < 0:
		return fmt.Errorf("regression: lambda must not be negative, got %g", p.Lambda)
	case p.MaxBins < 2 || p.MaxBins > 65535:
		return fmt.Errorf("regression: max bins must be in [2,65535], got %d", p.MaxBins)
	}
	return nil
}

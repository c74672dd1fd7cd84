package regression

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Metrics are hold-out scores of a fitted model.
type Metrics struct {
	MSE float64 `json:"mse"`
	R2  float64 `json:"r2"`
	N   int     `json:"n"`
}

// Evaluate scores m on (x, y). R2 is NaN when y has no variance.
func Evaluate(m *Model, x [][]float64, y []float64) (Metrics, error) {
	if len(x) != len(y) {
		return Metrics{}, fmt.Errorf("regression: %d rows but %d targets", len(x), len(y))
	}
	if len(x) == 0 {
		return Metrics{R2: math.NaN()}, nil
	}
	est := make([]float64, len(x))
	var sse float64
	for i, row := range x {
		p, err := m.Predict(row)
		if err != nil {
			return Metrics{}, err
		}
		est[i] = p
		d := y[i] - p
		sse += d * d
	}
	return Metrics{
		MSE: sse / float64(len(y)),
		R2:  stat.RSquaredFrom(est, y, nil),
		N:   len(y),
	}, nil
}

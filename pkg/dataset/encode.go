package dataset

import (
	"math"
	"math/rand"
	"sort"
)

// OneHot replaces every categorical column, except those in keep, by one
// indicator column per distinct label named "<column>_<label>". Remaining
// columns keep their order; indicator columns are appended in column order
// with labels sorted. Empty labels produce no indicator.
func OneHot(f *Frame, keep ...string) *Frame {
	kept := map[string]bool{}
	for _, k := range keep {
		kept[k] = true
	}
	out := &Frame{index: map[string]int{}, rows: f.rows}
	add := func(c *Column) {
		out.index[c.Name] = len(out.cols)
		out.cols = append(out.cols, c)
	}

	var encode []*Column
	for _, c := range f.cols {
		if c.Kind == Categorical && !kept[c.Name] {
			encode = append(encode, c)
			continue
		}
		add(c)
	}
	for _, c := range encode {
		for _, label := range Levels(c) {
			vals := make([]float64, f.rows)
			for i, l := range c.Labels {
				if l == label {
					vals[i] = 1
				}
			}
			add(&Column{Name: c.Name + "_" + label, Kind: Numeric, Values: vals})
		}
	}
	return out
}

// Levels returns the sorted distinct non-empty labels of a categorical column.
func Levels(c *Column) []string {
	set := map[string]struct{}{}
	for _, l := range c.Labels {
		if l != "" {
			set[l] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Split shuffles 0..n-1 with a fixed seed and returns train and test indices.
// The test side gets ceil(n*testFraction) rows, but never all of them.
func Split(n int, testFraction float64, seed int64) (train, test []int) {
	if n == 0 {
		return nil, nil
	}
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(math.Ceil(float64(n) * testFraction))
	if nTest < 0 {
		nTest = 0
	}
	if nTest >= n {
		nTest = n - 1
	}
	return perm[nTest:], perm[:nTest]
}

// Take selects rows of a row-major matrix and a target vector by index.
func Take(x [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	xs := make([][]float64, len(idx))
	ys := make([]float64, len(idx))
	for i, j := range idx {
		xs[i] = x[j]
		ys[i] = y[j]
	}
	return xs, ys
}

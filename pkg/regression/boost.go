package regression

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var ErrEmpty = errors.New("regression: no training rows")

type node struct {
	feature   int
	threshold float64
	left      int
	right     int
	value     float64
	leaf      bool
}

type tree []node

func (t tree) predict(row []float64) float64 {
	i := 0
	for !t[i].leaf {
		if row[t[i].feature] <= t[i].threshold {
			i = t[i].left
		} else {
			i = t[i].right
		}
	}
	return t[i].value
}

// Model is a fitted ensemble. It is immutable and safe for concurrent use.
type Model struct {
	base   float64
	rate   float64
	trees  []tree
	width  int
	params Params
}

func (m *Model) Width() int         { return m.width }
func (m *Model) Params() Params     { return m.params }
func (m *Model) TreeCount() int     { return len(m.trees) }
func (m *Model) BaseScore() float64 { return m.base }

// Predict scores one feature row.
func (m *Model) Predict(row []float64) (float64, error) {
	if len(row) != m.width {
		return 0, fmt.Errorf("regression: row has %d features, model expects %d", len(row), m.width)
	}
	out := m.base
	for _, t := range m.trees {
		out += m.rate * t.predict(row)
	}
	return out, nil
}

// Train fits a boosted ensemble of depth-limited regression trees.
func Train(x [][]float64, y []float64, p Params) (*Model, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(x) == 0 {
		return nil, ErrEmpty
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("regression: %d rows but %d targets", len(x), len(y))
	}
	width := len(x[0])
	if width == 0 {
		return nil, errors.New("regression: rows have no features")
	}
	for i, row := range x {
		if len(row) != width {
			return nil, fmt.Errorf("regression: row %d has %d features, want %d", i, len(row), width)
		}
	}

	b := newBinner(x, p.MaxBins)
	m := &Model{base: stat.Mean(y, nil), rate: p.LearningRate, width: width, params: p}

	n := len(y)
	pred := make([]float64, n)
	resid := make([]float64, n)
	for i := range pred {
		pred[i] = m.base
	}
	rows := make([]int, n)
	for t := 0; t < p.Trees; t++ {
		for i := range resid {
			resid[i] = y[i] - pred[i]
			rows[i] = i
		}
		g := grower{b: b, resid: resid, p: p}
		g.grow(rows, 0)
		tr := tree(g.nodes)
		m.trees = append(m.trees, tr)
		for i := range pred {
			pred[i] += p.LearningRate * tr.predict(x[i])
		}
	}
	return m, nil
}

// binner quantizes each feature into at most maxBins ordered buckets.
// Bin k holds values v with cuts[k-1] < v <= cuts[k].
type binner struct {
	cuts [][]float64
	bins [][]uint16 // [feature][row]
}

func newBinner(x [][]float64, maxBins int) *binner {
	width := len(x[0])
	b := &binner{cuts: make([][]float64, width), bins: make([][]uint16, width)}
	col := make([]float64, len(x))
	for f := 0; f < width; f++ {
		for i, row := range x {
			col[i] = row[f]
		}
		cuts := cutPoints(col, maxBins)
		b.cuts[f] = cuts
		idx := make([]uint16, len(x))
		for i, row := range x {
			idx[i] = uint16(sort.SearchFloat64s(cuts, row[f]))
		}
		b.bins[f] = idx
	}
	return b
}

func cutPoints(col []float64, maxBins int) []float64 {
	sorted := append([]float64(nil), col...)
	sort.Float64s(sorted)
	uniq := sorted[:0:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			uniq = append(uniq, v)
		}
	}
	var cuts []float64
	if len(uniq) <= maxBins {
		for i := 1; i < len(uniq); i++ {
			cuts = append(cuts, (uniq[i-1]+uniq[i])/2)
		}
		return cuts
	}
	for k := 1; k < maxBins; k++ {
		q := sorted[k*len(sorted)/maxBins]
		if len(cuts) == 0 || q > cuts[len(cuts)-1] {
			cuts = append(cuts, q)
		}
	}
	return cuts
}

type grower struct {
	b     *binner
	resid []float64
	p     Params
	nodes []node
}

func (g *grower) leafValue(sum float64, n int) float64 {
	return sum / (float64(n) + g.p.Lambda)
}

func (g *grower) score(sum float64, n int) float64 {
	return sum * sum / (float64(n) + g.p.Lambda)
}

func (g *grower) grow(rows []int, depth int) int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, node{})

	var sum float64
	for _, r := range rows {
		sum += g.resid[r]
	}
	n := len(rows)
	if depth >= g.p.MaxDepth || n < 2*g.p.MinSamplesLeaf {
		g.nodes[id] = node{leaf: true, value: g.leafValue(sum, n)}
		return id
	}

	parent := g.score(sum, n)
	bestGain, bestF, bestBin := 1e-12, -1, 0
	for f, cuts := range g.b.cuts {
		if len(cuts) == 0 {
			continue
		}
		nb := len(cuts) + 1
		hs := make([]float64, nb)
		hc := make([]int, nb)
		col := g.b.bins[f]
		for _, r := range rows {
			hs[col[r]] += g.resid[r]
			hc[col[r]]++
		}
		var ls float64
		var lc int
		for k := 0; k < nb-1; k++ {
			ls += hs[k]
			lc += hc[k]
			rc := n - lc
			if lc < g.p.MinSamplesLeaf {
				continue
			}
			if rc < g.p.MinSamplesLeaf {
				break
			}
			gain := g.score(ls, lc) + g.score(sum-ls, rc) - parent
			if gain > bestGain {
				bestGain, bestF, bestBin = gain, f, k
			}
		}
	}
	if bestF < 0 || math.IsNaN(bestGain) {
		g.nodes[id] = node{leaf: true, value: g.leafValue(sum, n)}
		return id
	}

	col := g.b.bins[bestF]
	var left, right []int
	for _, r := range rows {
		if int(col[r]) <= bestBin {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	l := g.grow(left, depth+1)
	r := g.grow(right, depth+1)
	g.nodes[id] = node{feature: bestF, threshold: g.b.cuts[bestF][bestBin], left: l, right: r}
	return id
}

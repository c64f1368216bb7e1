// pkg/rng/weighted.go
package rng

import "fmt"

// WeightedIndex draws indices from a fixed discrete distribution in
// constant time using Vose's alias method.
type WeightedIndex struct {
	prob  []float64
	alias []int
}

// NewWeightedIndex builds the alias tables for weights. It panics if
// weights is empty or any weight is negative, NaN, or if they sum to zero.
func NewWeightedIndex(weights []float64) *WeightedIndex {
	n := len(weights)
	if n == 0 {
		panic("rng: empty weight list")
	}

	var total float64
	for i, w := range weights {
		if w < 0 || w != w {
			panic(fmt.Sprintf("rng: invalid weight %v at index %d", w, i))
		}
		total += w
	}
	if total <= 0 {
		panic("rng: weights sum to zero")
	}

	wi := &WeightedIndex{
		prob:  make([]float64, n),
		alias: make([]int, n),
	}

	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		scaled[i] = w * float64(n) / total
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		wi.prob[s] = scaled[s]
		wi.alias[s] = l

		scaled[l] = scaled[l] + scaled[s] - 1
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Leftovers are 1 up to rounding.
	for _, i := range large {
		wi.prob[i] = 1
		wi.alias[i] = i
	}
	for _, i := range small {
		wi.prob[i] = 1
		wi.alias[i] = i
	}

	return wi
}

// Len returns the number of outcomes.
func (w *WeightedIndex) Len() int {
	return len(w.prob)
}

// Sample returns an index in [0, Len()).
func (w *WeightedIndex) Sample(src Source) int {
	i := src.IntN(len(w.prob))
	if src.Float64() < w.prob[i] {
		return i
	}
	return w.alias[i]
}

// RarityWeights returns n weights where the first carries rarity percent
// and the remaining n-1 share the residual equally. A single entry gets
// all the weight.
func RarityWeights(n int, rarity float64) []float64 {
	if n <= 0 {
		return nil
	}
	weights := make([]float64, n)
	if n == 1 {
		weights[0] = 100
		return weights
	}
	weights[0] = rarity
	rest := (100 - rarity) / float64(n-1)
	for i := 1; i < n; i++ {
		weights[i] = rest
	}
	return weights
}

package systems

import "github.com/pthm-cable/petri/components"

// WeightedIndex draws an index with probability proportional to its weight.
// Non-positive weights are never chosen. ok is false when no weight is positive.
func WeightedIndex(rng RNG, weights []int) (idx int, ok bool) {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0, false
	}

	r := rng.RandInt(1, total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r <= w {
			return i, true
		}
		r -= w
	}
	// Unreachable: r never exceeds total
	return len(weights) - 1, true
}

// ChooseSpecies picks uniformly among species with a nonzero remaining count.
// ok is false when every count is zero.
func ChooseSpecies(rng RNG, remaining [components.NumSpecies]int) (components.Species, bool) {
	var weights [components.NumSpecies]int
	for i, n := range remaining {
		if n > 0 {
			weights[i] = 1
		}
	}
	i, ok := WeightedIndex(rng, weights[:])
	return components.Species(i), ok
}

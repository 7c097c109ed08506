package markov

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
)

// weightedChoice draws one outcome with probability proportional to its
// weight. Weights need not sum to 1. The scan runs over sorted outcomes so
// that a seeded source yields reproducible draws. rng may be nil, in which
// case the shared package-level source is used.
func weightedChoice[K cmp.Ordered](rng *rand.Rand, weights map[K]float64) (K, error) {
	var zero K
	if len(weights) == 0 {
		return zero, fmt.Errorf("no outcomes to draw from: %w", ErrEmptyDistribution)
	}

	outcomes := make([]K, 0, len(weights))
	var total float64
	for k, w := range weights {
		outcomes = append(outcomes, k)
		total += w
	}
	if total <= 0 {
		return zero, fmt.Errorf("weights sum to %v: %w", total, ErrEmptyDistribution)
	}
	slices.Sort(outcomes)

	r := total
	if rng != nil {
		r *= rng.Float64()
	} else {
		r *= rand.Float64()
	}

	last := zero
	for _, k := range outcomes {
		w := weights[k]
		if w <= 0 {
			continue
		}
		last = k
		r -= w
		if r < 0 {
			return k, nil
		}
	}
	// Floating-point drift can leave a sliver of r after the scan.
	return last, nil
}

package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidInput reports a malformed selection request: an empty pool or a
// weight vector that doesn't match it. Both indicate a pool-construction bug
// in the caller, not a recoverable condition.
var ErrInvalidInput = errors.New("engine: invalid selection input")

// WeightedPick draws one item with probability proportional to its weight.
// Negative weights are clamped to 0. When every weight is 0 the draw falls
// back to uniform so a fully down-weighted pool can never stall selection.
func WeightedPick[T any](r Rand, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: empty items", ErrInvalidInput)
	}
	if len(items) != len(weights) {
		return zero, fmt.Errorf("%w: %d items vs %d weights", ErrInvalidInput, len(items), len(weights))
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return items[r.IntN(len(items))], nil
	}

	draw := r.Float64() * total
	acc := 0.0
	for i, w := range weights {
		if w > 0 {
			acc += w
		}
		if draw <= acc {
			return items[i], nil
		}
	}
	// Floating point slack on the final accumulation.
	return items[len(items)-1], nil
}

package memory

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridsparse/matrix"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultGuarantee is the probability with which EstimateNNZ bounds every tile.
const DefaultGuarantee = 0.99

// EstimateNNZ bounds the nonzeros of an nt×kt tile of a matrix with the given
// density (percent). Each element is nonzero with probability p, so a tile
// holds Binomial(nt·kt, p) nonzeros; with the normal approximation, the bound
//
//	ceil(mean + z·sd),  z = Φ⁻¹(guarantee^(1/trials))
//
// holds on all trials independent tiles at once with probability guarantee.
// The result is clamped to [0, nt·kt].
func EstimateNNZ(nt, kt int, density float64, trials int, guarantee float64) (int, error) {
	if nt <= 0 || kt <= 0 || trials <= 0 {
		return 0, fmt.Errorf("EstimateNNZ(%d, %d, trials=%d): %w", nt, kt, trials, ErrInvalidInput)
	}
	if !(guarantee > 0 && guarantee < 1) {
		return 0, fmt.Errorf("EstimateNNZ: guarantee %.3f not in (0,1): %w", guarantee, ErrInvalidInput)
	}
	if err := matrix.ValidateDensity(density); err != nil {
		return 0, fmt.Errorf("EstimateNNZ: %w: %w", ErrInvalidInput, err)
	}

	n := nt * kt
	p := density / 100
	mean := float64(n) * p
	sd := math.Sqrt(float64(n) * p * (1 - p))
	z := distuv.UnitNormal.Quantile(math.Pow(guarantee, 1/float64(trials)))
	k := int(math.Ceil(mean + z*sd))

	return min(max(k, 0), n), nil
}

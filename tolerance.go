// github.com/cutkernel/planar - a 2D planar-region Boolean-geometry kernel

package planar

// Numerical tolerances for the kernel. This is the complete tolerance
// model: two fixed thresholds plus a radius-scaled angle tolerance
// derived from one of them. No further epsilons are introduced anywhere
// in the kernel.
const (
	// DistanceEpsilon is used for point coincidence, parameter endpoint
	// comparisons, and normal-dot sign tests.
	DistanceEpsilon = 1e-8

	// NumericZero is used for determinants, parallel tests, and
	// collinearity tests.
	NumericZero = 1e-6

	// mergeParamPad is the padding applied to the last-inserted merge
	// parameter before the next scan, so the start pair is not
	// immediately re-hit. Load-bearing; see nextCandidate in merge.go.
	mergeParamPad = 1.5 * DistanceEpsilon
)

// angleTolerance returns the angle tolerance for an arc of the given
// radius: distance epsilon scaled by the local radius, so that a chord
// deviation of about DistanceEpsilon corresponds to this angular slack.
func angleTolerance(radius float64) float64 {
	if radius <= 0 {
		return NumericZero
	}
	return DistanceEpsilon / radius
}

package scoring

import "math"

// Fixed weights for the composite readiness index.
const (
	compositeWeightPIQ         = 0.25
	compositeWeightSituational = 0.25
	compositeWeightWord        = 0.20
	compositeWeightStory       = 0.30
)

// CompositeReadiness combines the most recent percentage scores of the four
// practice modules into a single display number. Absent modules contribute
// zero; the caller passes 0 for any module never attempted. The index carries
// no risk tier, only the per-module results are classified.
func CompositeReadiness(piq, situational, word, story float64) int {
	weighted := piq*compositeWeightPIQ +
		situational*compositeWeightSituational +
		word*compositeWeightWord +
		story*compositeWeightStory
	return int(math.Round(weighted))
}

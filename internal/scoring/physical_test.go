package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fitProfile() PhysicalProfile {
	return PhysicalProfile{
		HeightCm:   170,
		WeightKg:   70,
		Vision:     "6/6",
		Pushups:    45,
		RunMinutes: 5,
		Situps:     45,
	}
}

func TestScorePhysical_FitCandidate(t *testing.T) {
	result := ScorePhysical(fitProfile())

	assert.Equal(t, 24.22, result.BMI)
	assert.Equal(t, BMIFit, result.BMICategory)
	assert.Equal(t, 30, result.BodyMassScore)
	assert.Equal(t, 25, result.VisionScore)
	assert.Equal(t, 25, result.ConditionScore)
	assert.Equal(t, 25, result.FitnessScore)

	// Raw sum is 105; the aggregate is clamped to 100.
	assert.Equal(t, 100, result.AggregateScore)
	assert.Equal(t, RiskLow, result.RiskLevel)
}

func TestScorePhysical_RemediationPlanFitBranch(t *testing.T) {
	plan := ScorePhysical(fitProfile()).RemediationPlan

	assert.Len(t, plan, 4)
	for i, entry := range plan {
		assert.Equal(t, i+1, entry.Week)
	}
	assert.Contains(t, plan[0].Task, "Maintain")
	assert.Contains(t, plan[1].Task, "Advanced strength")
	assert.Contains(t, plan[2].Task, "mobility")
	assert.Contains(t, plan[3].Task, "compare")
}

func TestScorePhysical_ConditionDeductionsStackAndFloor(t *testing.T) {
	p := fitProfile()
	p.FlatFoot = true
	p.ColorBlind = true
	p.SurgeryHistory = true

	result := ScorePhysical(p)

	// 25 - 10 - 20 - 10 stacks past zero and is floored.
	assert.Equal(t, 0, result.ConditionScore)
}

func TestScorePhysical_VisionCategories(t *testing.T) {
	cases := []struct {
		vision string
		score  int
	}{
		{"6/6", 25},
		{"Normal", 25},
		{"correctable", 20},
		{"poor", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.score, visionScore(tc.vision), "vision: %q", tc.vision)
	}
}

func TestScorePhysical_BMICategories(t *testing.T) {
	cases := []struct {
		weight   float64
		height   float64
		category BMICategory
		score    int
	}{
		{50, 175, BMIUnderweight, 20},
		{70, 170, BMIFit, 30},
		{85, 170, BMIOverweight, 20},
		{100, 170, BMIObese, 10},
	}
	for _, tc := range cases {
		result := ScorePhysical(PhysicalProfile{HeightCm: tc.height, WeightKg: tc.weight, Vision: "6/6"})
		assert.Equal(t, tc.category, result.BMICategory, "weight %v", tc.weight)
		assert.Equal(t, tc.score, result.BodyMassScore, "weight %v", tc.weight)
	}
}

func TestScorePhysical_WeakCandidateRemediation(t *testing.T) {
	p := PhysicalProfile{
		HeightCm:   170,
		WeightKg:   100,
		Vision:     "poor",
		FlatFoot:   true,
		Pushups:    5,
		RunMinutes: 10,
		Situps:     10,
	}

	result := ScorePhysical(p)

	// pushups 4 + run 4 + situps 2
	assert.Equal(t, 10, result.FitnessScore)
	assert.Equal(t, RiskHigh, result.RiskLevel)

	plan := result.RemediationPlan
	assert.Contains(t, plan[0].Task, "Reduce")
	assert.Contains(t, plan[1].Task, "Foundational strength")
	assert.Contains(t, plan[2].Task, "Arch-correction")
	assert.Contains(t, plan[3].Task, "vision certificate")
}

func TestScorePhysical_DocumentListForColorBlindness(t *testing.T) {
	p := fitProfile()
	p.ColorBlind = true

	plan := ScorePhysical(p).RemediationPlan

	assert.Contains(t, plan[3].Task, "Ishihara")
	assert.NotContains(t, plan[3].Task, "vision certificate")
}

func TestScorePhysical_AggregateAlwaysWithinBounds(t *testing.T) {
	profiles := []PhysicalProfile{
		{},
		fitProfile(),
		{HeightCm: 170, WeightKg: 100, FlatFoot: true, ColorBlind: true, SurgeryHistory: true},
	}
	for _, p := range profiles {
		result := ScorePhysical(p)
		assert.GreaterOrEqual(t, result.AggregateScore, 0)
		assert.LessOrEqual(t, result.AggregateScore, 100)
	}
}

func TestComputeBMI_RoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 24.22, ComputeBMI(70, 170))
	assert.Equal(t, 0.0, ComputeBMI(70, 0))
}

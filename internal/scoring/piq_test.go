package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strongProfile() Profile {
	return Profile{
		PositionOfResponsibility: true,
		TeamSportsYears:          3,
		NCCInvolvement:           true,
		SportsLevel:              SportsState,
		OrganizedEvent:           true,
		VolunteerWork:            true,
		FamilyResponsibility:     true,
		AcademicConsistency:      true,
		PublicSpeaking:           true,
		CompetitiveAchievements:  true,
		AttemptNumber:            1,
	}
}

func TestScorePIQ_StrongProfile(t *testing.T) {
	result := ScorePIQ(strongProfile())

	assert.Equal(t, 9, result.Traits.Leadership)
	assert.Equal(t, 7, result.Traits.Initiative)
	assert.Equal(t, 7, result.Traits.Responsibility)
	assert.Equal(t, 8, result.Traits.SocialAdaptability)
	assert.Equal(t, 9, result.Traits.Confidence)
	assert.Equal(t, 8, result.Traits.Consistency)

	assert.Equal(t, 80, result.AggregateScore)
	assert.Equal(t, RiskLow, result.RiskLevel)
	assert.Empty(t, result.FollowUpQuestions)
}

func TestScorePIQ_EmptyProfile(t *testing.T) {
	result := ScorePIQ(Profile{SportsLevel: SportsNone, AttemptNumber: 1})

	assert.Equal(t, 0, result.Traits.Leadership)
	assert.Equal(t, 1, result.Traits.Consistency)
	assert.Equal(t, 2, result.AggregateScore)
	assert.Equal(t, RiskHigh, result.RiskLevel)
}

func TestDeriveTraits_AlwaysWithinBounds(t *testing.T) {
	profiles := []Profile{
		{},
		strongProfile(),
		{TeamSportsYears: 20, SportsLevel: SportsState, AttemptNumber: 10},
	}
	for _, p := range profiles {
		traits := DeriveTraits(p)
		for name, score := range map[string]int{
			"leadership":          traits.Leadership,
			"initiative":          traits.Initiative,
			"responsibility":      traits.Responsibility,
			"social_adaptability": traits.SocialAdaptability,
			"confidence":          traits.Confidence,
			"consistency":         traits.Consistency,
		} {
			assert.GreaterOrEqual(t, score, 0, name)
			assert.LessOrEqual(t, score, traitMax, name)
		}
	}
}

func TestGenerateFollowUps_CappedAtFive(t *testing.T) {
	// Everything fires: weak traits, no sports, repeat attempt. Rule order
	// decides which questions survive the cap.
	questions := GenerateFollowUps(TraitScores{}, Profile{SportsLevel: SportsNone, AttemptNumber: 3})

	assert.Len(t, questions, maxFollowUps)
	assert.Equal(t, "leadership", questions[0].Trait)
	assert.Equal(t, "leadership", questions[1].Trait)
	assert.Equal(t, "initiative", questions[2].Trait)
	assert.Equal(t, "initiative", questions[3].Trait)
	assert.Equal(t, "social_adaptability", questions[4].Trait)
}

func TestGenerateFollowUps_RepeatAttemptQuestion(t *testing.T) {
	strong := DeriveTraits(strongProfile())
	profile := strongProfile()
	profile.AttemptNumber = 2

	questions := GenerateFollowUps(strong, profile)

	assert.Len(t, questions, 1)
	assert.Equal(t, "consistency", questions[0].Trait)
	assert.Contains(t, questions[0].Question, "previous attempt")
}

func TestScorePIQ_RiskTierOrdering(t *testing.T) {
	weak := ScorePIQ(Profile{SportsLevel: SportsNone, AttemptNumber: 1})
	strong := ScorePIQ(strongProfile())

	assert.Greater(t, strong.AggregateScore, weak.AggregateScore)
	assert.NotEqual(t, RiskHigh, strong.RiskLevel)
	assert.Equal(t, RiskHigh, weak.RiskLevel)
}

func TestScorePIQ_Deterministic(t *testing.T) {
	profile := strongProfile()
	profile.VolunteerWork = false
	profile.AttemptNumber = 4

	assert.Equal(t, ScorePIQ(profile), ScorePIQ(profile))
}

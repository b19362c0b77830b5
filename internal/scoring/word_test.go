package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateWordAssociations_PositiveSentence(t *testing.T) {
	result := EvaluateWordAssociations([]WordItem{
		{
			WordID:     "w-1",
			Word:       "duty",
			Difficulty: DifficultyMedium,
			Theme:      "Responsibility",
			Sentence:   "I work every day to fulfil my duty.",
		},
	})

	// base 1 + no negatives + action + first-person token = 4 of 4.
	assert.Equal(t, 4, result.TotalScore)
	assert.Equal(t, 4, result.MaxScore)
	assert.Equal(t, 100, result.Percentage)
	assert.Equal(t, RiskLow, result.RiskLevel)
}

func TestEvaluateWordAssociations_HardBonus(t *testing.T) {
	item := WordItem{Word: "victory", Sentence: "We train daily so our team can win the match."}

	item.Difficulty = DifficultyEasy
	easy := EvaluateWordAssociations([]WordItem{item})
	item.Difficulty = DifficultyHard
	hard := EvaluateWordAssociations([]WordItem{item})

	// The raw score of 4 is clamped to 3 on easy; on hard the bonus point
	// lifts it to 5.
	assert.Equal(t, 3, easy.TotalScore)
	assert.Equal(t, 3, easy.MaxScore)
	assert.Equal(t, 5, hard.TotalScore)
	assert.Equal(t, 5, hard.MaxScore)
}

func TestEvaluateWordAssociations_ShortSentenceScoresZero(t *testing.T) {
	result := EvaluateWordAssociations([]WordItem{
		{Word: "war", Difficulty: DifficultyEasy, Sentence: "no"},
		{Word: "fear", Difficulty: DifficultyEasy, Sentence: "   "},
	})

	assert.Equal(t, 0, result.TotalScore)
	assert.Equal(t, 6, result.MaxScore)
	assert.Equal(t, RiskHigh, result.RiskLevel)
}

func TestEvaluateWordAssociations_TokenMatchingAvoidsFalsePositives(t *testing.T) {
	// "india" and "mighty" contain "i" and "my" only as substrings; the
	// responsibility check must not fire.
	without := scoreWordItem("india has mighty mountains", DifficultyMedium, 4)
	with := scoreWordItem("india has mighty mountains and i climb them", DifficultyMedium, 4)

	assert.Equal(t, 2, without)
	assert.Equal(t, 3, with)
}

func TestEvaluateWordAssociations_ActionWordNeverDecreasesScore(t *testing.T) {
	sentences := []string{
		"the sky looks calm today",
		"india has mighty mountains",
		"our nation stands proud",
	}
	for _, sentence := range sentences {
		base := scoreWordItem(sentence, DifficultyMedium, 4)
		boosted := scoreWordItem(sentence+" and people work", DifficultyMedium, 4)
		assert.GreaterOrEqual(t, boosted, base, "sentence: %q", sentence)
	}
}

func TestEvaluateWordAssociations_NegativeSentenceBlocksBonus(t *testing.T) {
	result := EvaluateWordAssociations([]WordItem{
		{Difficulty: DifficultyHard, Sentence: "i fear we will fail and lose everything"},
	})

	// base 1 + first-person token; negatives cancel the calm point, the
	// action check fails and the hard bonus never fires.
	assert.Equal(t, 2, result.TotalScore)
	assert.Equal(t, 5, result.MaxScore)
}

func TestEvaluateWordAssociations_ScoreNeverExceedsDifficultyMax(t *testing.T) {
	sentence := "i train and work hard so we win and i serve my nation with duty"
	for difficulty, max := range wordDifficultyMax {
		score := scoreWordItem(sentence, difficulty, max)
		assert.LessOrEqual(t, score, max, "difficulty: %s", difficulty)
	}
}

func TestEvaluateWordAssociations_Deterministic(t *testing.T) {
	items := []WordItem{
		{Word: "team", Difficulty: DifficultyEasy, Theme: "Unity", Sentence: "we play as one team"},
		{Word: "duty", Difficulty: DifficultyHard, Theme: "Service", Sentence: "i serve my nation with pride"},
	}

	assert.Equal(t, EvaluateWordAssociations(items), EvaluateWordAssociations(items))
}

package scoring

import "math"

// StoryItem is one picture-story prompt with the candidate's narrative.
// Theme defaults to "General" and difficulty to "medium" when empty.
type StoryItem struct {
	ImageID    string     `json:"image_id"`
	Theme      string     `json:"theme"`
	Difficulty Difficulty `json:"difficulty"`
	Story      string     `json:"story"`
}

// StorySubScores are the seven narrative-quality components of one story.
type StorySubScores struct {
	HeroIdentification int `json:"hero_identification"`
	ProblemRecognition int `json:"problem_recognition"`
	PlanningAbility    int `json:"planning_ability"`
	Leadership         int `json:"leadership"`
	PositiveOutcome    int `json:"positive_outcome"`
	EmotionalStability int `json:"emotional_stability"`
	Realism            int `json:"realism"`
}

// StoryResult is the aggregate outcome of a picture-story test. Totals are
// multiplier-weighted sums rounded to integers.
type StoryResult struct {
	TotalScore     int                   `json:"total_score"`
	MaxScore       int                   `json:"max_score"`
	Percentage     int                   `json:"percentage"`
	RiskLevel      RiskLevel             `json:"risk_level"`
	ThemeBreakdown map[string]ThemeScore `json:"theme_breakdown"`
}

const (
	storyRawMax = 14

	// A story of 30 characters or fewer is not scored at all; a story of
	// fewer than 30 words keeps its emotional-stability and realism
	// sub-scores capped at 1. The two limits interact around very short
	// stories and are reproduced as-is from the product rules.
	storyMinChars     = 30
	storyShortWords   = 30
	storyShortSubCap  = 1
	storySubScoreCap  = 2
	storyStabilityCap = 2
)

var storyDifficultyMultiplier = map[Difficulty]float64{
	DifficultyEasy:   1.0,
	DifficultyMedium: 1.2,
	DifficultyHard:   1.5,
}

var (
	storyHeroWords = vocabulary{entries: []string{
		"hero", "officer", "leader", "soldier", "captain", "young man",
		"young woman", "villager", "student", "cadet", "volunteer",
	}}
	storyProblemWords = vocabulary{entries: []string{
		"problem", "crisis", "accident", "flood", "fire", "injured",
		"danger", "conflict", "emergency", "trouble", "storm", "attack",
	}}
	storyPlanningWords = vocabulary{entries: []string{
		"plan", "decide", "prepare", "arrange", "first", "then", "next",
		"strategy", "assign", "organize", "organise", "schedule",
	}}
	storyLeadershipWords = vocabulary{entries: []string{
		"lead", "guide", "instruct", "direct", "command", "motivate",
		"team", "together", "coordinate", "volunteers",
	}}
	storyOutcomeWords = vocabulary{entries: []string{
		"success", "saved", "resolved", "safe", "recovered", "achieved",
		"completed", "won", "rescued", "restored",
	}}
	storyPanicWords = vocabulary{entries: []string{
		"panic", "cry", "fear", "scared", "hopeless", "helpless",
		"gave up", "terrified",
	}}
	storyUnrealisticWords = vocabulary{entries: []string{
		"magic", "superpower", "ghost", "miracle", "alien", "dragon",
		"teleport", "superhero", "flew away",
	}}
)

// EvaluateStories scores a sequence of picture stories. Each story yields a
// raw score in [0,14] from seven capped sub-scores; the difficulty
// multiplier then scales both the score and its maximum before aggregation.
func EvaluateStories(items []StoryItem) StoryResult {
	themes := themeAccumulator{}
	var total, max float64
	for _, item := range items {
		sub := ScoreStory(item.Story)
		raw := sub.HeroIdentification + sub.ProblemRecognition + sub.PlanningAbility +
			sub.Leadership + sub.PositiveOutcome + sub.EmotionalStability + sub.Realism

		mult, ok := storyDifficultyMultiplier[item.Difficulty]
		if !ok {
			mult = storyDifficultyMultiplier[DifficultyMedium]
		}
		weighted := float64(raw) * mult
		weightedMax := storyRawMax * mult

		total += weighted
		max += weightedMax
		themes.add(item.Theme, weighted, weightedMax)
	}

	pct := 0
	if max > 0 {
		pct = int(math.Round(total / max * 100))
	}
	return StoryResult{
		TotalScore:     int(math.Round(total)),
		MaxScore:       int(math.Round(max)),
		Percentage:     pct,
		RiskLevel:      riskFor(float64(pct), 80, 65),
		ThemeBreakdown: themes.result(),
	}
}

// ScoreStory computes the seven sub-scores for a single narrative. Stories
// of 30 characters or fewer score zero across the board.
func ScoreStory(story string) StorySubScores {
	text := normalize(story)
	if len(text) <= storyMinChars {
		return StorySubScores{}
	}

	sub := StorySubScores{
		HeroIdentification: capCount(storyHeroWords.count(text), storySubScoreCap),
		ProblemRecognition: capCount(storyProblemWords.count(text), storySubScoreCap),
		PlanningAbility:    capCount(storyPlanningWords.count(text), storySubScoreCap),
		Leadership:         capCount(storyLeadershipWords.count(text), storySubScoreCap),
		PositiveOutcome:    capCount(storyOutcomeWords.count(text), storySubScoreCap),
		EmotionalStability: inversePresenceScore(storyPanicWords.count(text)),
		Realism:            inversePresenceScore(storyUnrealisticWords.count(text)),
	}

	if len(tokenize(text)) < storyShortWords {
		sub.EmotionalStability = capCount(sub.EmotionalStability, storyShortSubCap)
		sub.Realism = capCount(sub.Realism, storyShortSubCap)
	}
	return sub
}

// inversePresenceScore rewards the absence of a negative signal: 2 for zero
// matches, 1 for exactly one, 0 for two or more.
func inversePresenceScore(matches int) int {
	switch matches {
	case 0:
		return storyStabilityCap
	case 1:
		return 1
	default:
		return 0
	}
}

func capCount(n, cap int) int {
	if n > cap {
		return cap
	}
	return n
}

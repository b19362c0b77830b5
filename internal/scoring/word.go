package scoring

import "math"

// WordItem is one word-association stimulus with the candidate's sentence.
type WordItem struct {
	WordID     string     `json:"word_id"`
	Word       string     `json:"word"`
	Difficulty Difficulty `json:"difficulty"`
	Theme      string     `json:"theme"`
	Sentence   string     `json:"sentence"`
}

// WordResult is the aggregate outcome of a word-association test.
type WordResult struct {
	TotalScore     int                   `json:"total_score"`
	MaxScore       int                   `json:"max_score"`
	Percentage     int                   `json:"percentage"`
	RiskLevel      RiskLevel             `json:"risk_level"`
	ThemeBreakdown map[string]ThemeScore `json:"theme_breakdown"`
}

// wordDifficultyMax is the per-item ceiling by stimulus difficulty.
var wordDifficultyMax = map[Difficulty]int{
	DifficultyEasy:   3,
	DifficultyMedium: 4,
	DifficultyHard:   5,
}

var (
	wordNegativeWords = vocabulary{entries: []string{
		"sad", "cry", "fail", "fear", "hate", "death", "alone",
		"dark", "never", "impossible", "weak", "lose",
	}}
	wordActionWords = vocabulary{entries: []string{
		"work", "play", "lead", "help", "build", "win", "run",
		"practice", "practise", "learn", "achieve", "serve", "train",
	}}
	// Matched as whole tokens: a bare "i" or "my" must stand alone in the
	// sentence, never inside another word.
	wordResponsibilityWords = vocabulary{
		entries: []string{"i", "my", "we", "our", "myself", "duty", "responsible"},
		mode:    matchToken,
	}
)

// EvaluateWordAssociations scores a sequence of word-association sentences.
// Per-item maxima depend on the stimulus difficulty (easy 3, medium 4,
// hard 5); hard stimuli earn a bonus point for strong positive sentences.
func EvaluateWordAssociations(items []WordItem) WordResult {
	themes := themeAccumulator{}
	var total, max int
	for _, item := range items {
		itemMax, ok := wordDifficultyMax[item.Difficulty]
		if !ok {
			itemMax = wordDifficultyMax[DifficultyMedium]
		}
		score := scoreWordItem(item.Sentence, item.Difficulty, itemMax)
		total += score
		max += itemMax
		themes.add(item.Theme, float64(score), float64(itemMax))
	}

	pct := 0
	if max > 0 {
		pct = int(math.Round(float64(total) / float64(max) * 100))
	}
	return WordResult{
		TotalScore:     total,
		MaxScore:       max,
		Percentage:     pct,
		RiskLevel:      riskFor(float64(pct), 80, 65),
		ThemeBreakdown: themes.result(),
	}
}

func scoreWordItem(sentence string, difficulty Difficulty, max int) int {
	text := normalize(sentence)
	if len(text) <= 3 {
		return 0
	}

	score := 1
	negative := wordNegativeWords.contains(text)
	if !negative {
		score++
	}
	if wordActionWords.contains(text) {
		score++
	}
	if wordResponsibilityWords.contains(text) {
		score++
	}
	if difficulty == DifficultyHard && !negative && score >= 3 {
		score++
	}
	return clampInt(score, 0, max)
}

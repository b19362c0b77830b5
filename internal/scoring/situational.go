package scoring

// SituationalItem is one situational-reaction prompt with the candidate's
// free-text response. Theme defaults to "General" when empty.
type SituationalItem struct {
	ID       string `json:"id"`
	Theme    string `json:"theme"`
	Response string `json:"response"`
}

// SituationalResult is the aggregate outcome of a situational test.
type SituationalResult struct {
	TotalScore     int                   `json:"total_score"`
	MaxScore       int                   `json:"max_score"`
	Percentage     float64               `json:"percentage"`
	RiskLevel      RiskLevel             `json:"risk_level"`
	ThemeBreakdown map[string]ThemeScore `json:"theme_breakdown"`
}

const situationalItemMax = 5

// Signal vocabularies for situational responses. Substring containment
// throughout; the commitment list holds phrases, not single tokens.
var (
	situationalActionWords = vocabulary{entries: []string{
		"help", "rescue", "alert", "organize", "organise", "intervene",
		"assist", "inform", "report", "protect", "guide", "support",
		"evacuate", "arrange", "coordinate", "call",
	}}
	situationalCommitmentWords = vocabulary{entries: []string{
		"i will", "i'll", "i would immediately", "i ensure", "i shall",
		"i take charge", "i must",
	}}
	situationalPanicWords = vocabulary{entries: []string{
		"panic", "cry", "freeze", "give up", "scared", "afraid",
		"run away", "terrified", "helpless",
	}}
	situationalVagueWords = vocabulary{entries: []string{
		"try", "maybe", "probably", "i think", "perhaps", "might",
		"hopefully", "possibly",
	}}
	situationalAggressionWords = vocabulary{entries: []string{
		"hit", "beat", "kill", "slap", "punch", "shoot",
	}}
)

// EvaluateSituational scores a sequence of situational-reaction responses.
// An empty response scores 0; a non-empty response starts at 1 and gains or
// loses points for the behavioral signals documented on scoreSituationalItem.
// The per-theme breakdown mirrors the aggregate computation.
func EvaluateSituational(items []SituationalItem) SituationalResult {
	themes := themeAccumulator{}
	total := 0
	for _, item := range items {
		score := scoreSituationalItem(item.Response)
		total += score
		themes.add(item.Theme, float64(score), situationalItemMax)
	}

	max := situationalItemMax * len(items)
	pct := 0.0
	if max > 0 {
		pct = float64(total) / float64(max) * 100
	}
	return SituationalResult{
		TotalScore:     total,
		MaxScore:       max,
		Percentage:     pct,
		RiskLevel:      riskFor(pct, 80, 65),
		ThemeBreakdown: themes.result(),
	}
}

// scoreSituationalItem applies the signal rules to a single response:
// action verbs and first-person commitment each add a point, calmness and
// clarity each add a point when their negative vocabularies are absent and
// the response is long enough, hedging or very short answers lose a point,
// aggression loses a point. The result is clamped to [0,5].
func scoreSituationalItem(response string) int {
	text := normalize(response)
	if text == "" {
		return 0
	}

	score := 1
	if situationalActionWords.contains(text) {
		score++
	}
	if situationalCommitmentWords.contains(text) {
		score++
	}
	if !situationalPanicWords.contains(text) && len(text) > 10 {
		score++
	}
	vague := situationalVagueWords.contains(text)
	if !vague && len(text) > 5 {
		score++
	}
	if vague || len(text) < 10 {
		score--
	}
	if situationalAggressionWords.contains(text) {
		score--
	}
	return clampInt(score, 0, situationalItemMax)
}

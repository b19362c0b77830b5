// Package scoring contains the rule-based psychometric scoring engines.
//
// Every evaluator in this package is a pure function over in-memory value
// objects: no I/O, no configuration, no shared state. Vocabulary tables,
// weights and thresholds are fixed package-level data and are never mutated
// after initialization. Callers are responsible for validating and clamping
// raw external input before constructing the typed inputs defined here.
package scoring

import (
	"math"
	"strings"
	"unicode"
)

// RiskLevel classifies candidate readiness. LOW means the strongest trait
// evidence, HIGH the weakest. The ordering is shared by all engines; the
// numeric thresholds are per-engine.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
)

// Difficulty is the difficulty tag carried by story and word items.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DefaultTheme is used when an item carries no theme label.
const DefaultTheme = "General"

// ThemeScore is the per-theme slice of an evaluation result.
type ThemeScore struct {
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage float64 `json:"percentage"`
}

// riskFor maps a percentage onto a tier given the engine's two thresholds.
func riskFor(percentage, low, moderate float64) RiskLevel {
	switch {
	case percentage >= low:
		return RiskLow
	case percentage >= moderate:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// themeAccumulator groups per-item scores by theme label.
type themeAccumulator map[string]*ThemeScore

func (a themeAccumulator) add(theme string, score, max float64) {
	if theme == "" {
		theme = DefaultTheme
	}
	ts, ok := a[theme]
	if !ok {
		ts = &ThemeScore{}
		a[theme] = ts
	}
	ts.Score += score
	ts.MaxScore += max
}

func (a themeAccumulator) result() map[string]ThemeScore {
	out := make(map[string]ThemeScore, len(a))
	for theme, ts := range a {
		pct := 0.0
		if ts.MaxScore > 0 {
			pct = round2(ts.Score / ts.MaxScore * 100)
		}
		out[theme] = ThemeScore{Score: ts.Score, MaxScore: ts.MaxScore, Percentage: pct}
	}
	return out
}

// ===== VOCABULARY MATCHING =====

// matchMode selects how a vocabulary is matched against a normalized text.
// Most lists use plain substring containment, mirroring the per-item checks;
// the first-person responsibility list uses whole-token matching so that a
// bare "i" never matches inside another word.
type matchMode int

const (
	matchSubstring matchMode = iota
	matchToken
)

type vocabulary struct {
	entries []string
	mode    matchMode
}

// contains reports whether any entry of the vocabulary occurs in text.
// text must already be lower-cased and trimmed.
func (v vocabulary) contains(text string) bool {
	return v.count(text) > 0
}

// count returns how many distinct entries occur in text. Each entry is
// counted at most once regardless of repetition.
func (v vocabulary) count(text string) int {
	if text == "" {
		return 0
	}
	haystack := text
	if v.mode == matchToken {
		haystack = " " + strings.Join(tokenize(text), " ") + " "
	}
	n := 0
	for _, entry := range v.entries {
		if v.mode == matchToken {
			if strings.Contains(haystack, " "+entry+" ") {
				n++
			}
		} else if strings.Contains(haystack, entry) {
			n++
		}
	}
	return n
}

// tokenize splits text on every non-word character.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// normalize lower-cases and trims an item's free text before scoring.
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

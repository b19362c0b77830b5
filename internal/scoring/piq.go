package scoring

import "math"

// SportsLevel is the highest competition level reported in the PIQ.
type SportsLevel string

const (
	SportsNone     SportsLevel = "none"
	SportsSchool   SportsLevel = "school"
	SportsDistrict SportsLevel = "district"
	SportsState    SportsLevel = "state"
)

// Profile is the structured biographical self-report (PIQ). Numeric fields
// are expected to be clamped by the caller: TeamSportsYears to [0,20] and
// AttemptNumber to [1,10].
type Profile struct {
	PositionOfResponsibility bool        `json:"position_of_responsibility"`
	TeamSportsYears          int         `json:"team_sports_years"`
	NCCInvolvement           bool        `json:"ncc_involvement"`
	SportsLevel              SportsLevel `json:"sports_level"`
	OrganizedEvent           bool        `json:"organized_event"`
	VolunteerWork            bool        `json:"volunteer_work"`
	FamilyResponsibility     bool        `json:"family_responsibility"`
	AcademicConsistency      bool        `json:"academic_consistency"`
	PublicSpeaking           bool        `json:"public_speaking"`
	CompetitiveAchievements  bool        `json:"competitive_achievements"`
	AttemptNumber            int         `json:"attempt_number"`
}

// TraitScores are the six officer-like-quality dimensions, each in [0,10].
type TraitScores struct {
	Leadership         int `json:"leadership"`
	Initiative         int `json:"initiative"`
	Responsibility     int `json:"responsibility"`
	SocialAdaptability int `json:"social_adaptability"`
	Confidence         int `json:"confidence"`
	Consistency        int `json:"consistency"`
}

// FollowUpQuestion is one generated interview question with the reasoning
// behind it and the trait or condition that triggered it.
type FollowUpQuestion struct {
	Question string `json:"question"`
	Reason   string `json:"reason"`
	Trait    string `json:"trait"`
}

// PIQResult is the full outcome of scoring a biographical profile.
type PIQResult struct {
	Traits            TraitScores        `json:"traits"`
	AggregateScore    int                `json:"aggregate_score"`
	RiskLevel         RiskLevel          `json:"risk_level"`
	FollowUpQuestions []FollowUpQuestion `json:"follow_up_questions"`
}

const (
	traitMax          = 10
	maxFollowUps      = 5
	weakTraitCutoff   = 5
	piqMaxWeightedSum = 64 // traitMax * sum of trait weights
)

// Aggregate weights per trait. Leadership and responsibility carry extra
// weight in the interview-readiness index.
const (
	weightLeadership         = 1.2
	weightInitiative         = 1.0
	weightResponsibility     = 1.2
	weightSocialAdaptability = 1.0
	weightConfidence         = 1.0
	weightConsistency        = 1.0
)

// ScorePIQ converts a biographical profile into trait scores, a weighted
// aggregate in [0,100], a risk tier and up to five follow-up interview
// questions.
func ScorePIQ(profile Profile) PIQResult {
	traits := DeriveTraits(profile)
	aggregate := aggregateTraitScore(traits)
	return PIQResult{
		Traits:            traits,
		AggregateScore:    aggregate,
		RiskLevel:         riskFor(float64(aggregate), 80, 65),
		FollowUpQuestions: GenerateFollowUps(traits, profile),
	}
}

// DeriveTraits accumulates the fixed per-field contributions into the six
// trait scores, each clamped to [0,10].
func DeriveTraits(p Profile) TraitScores {
	var t TraitScores

	if p.PositionOfResponsibility {
		t.Leadership += 3
	}
	if p.TeamSportsYears >= 2 {
		t.Leadership += 2
	}
	if p.NCCInvolvement {
		t.Leadership += 2
	}
	if p.SportsLevel == SportsDistrict || p.SportsLevel == SportsState {
		t.Leadership += 2
	}

	if p.OrganizedEvent {
		t.Initiative += 3
	}
	if p.VolunteerWork {
		t.Initiative += 2
	}
	if p.PublicSpeaking {
		t.Initiative += 1
	}
	if p.NCCInvolvement {
		t.Initiative += 1
	}

	if p.FamilyResponsibility {
		t.Responsibility += 2
	}
	if p.PositionOfResponsibility {
		t.Responsibility += 2
	}
	if p.VolunteerWork {
		t.Responsibility += 2
	}
	if p.AcademicConsistency {
		t.Responsibility += 1
	}

	if p.TeamSportsYears >= 1 {
		t.SocialAdaptability += 3
	}
	if p.VolunteerWork {
		t.SocialAdaptability += 2
	}
	if p.OrganizedEvent {
		t.SocialAdaptability += 2
	}
	if p.PublicSpeaking {
		t.SocialAdaptability += 1
	}

	if p.PublicSpeaking {
		t.Confidence += 3
	}
	if p.CompetitiveAchievements {
		t.Confidence += 2
	}
	if p.SportsLevel != SportsNone && p.SportsLevel != "" {
		t.Confidence += 2
	}
	if p.PositionOfResponsibility {
		t.Confidence += 2
	}

	if p.AcademicConsistency {
		t.Consistency += 3
	}
	if p.TeamSportsYears >= 3 {
		t.Consistency += 2
	}
	if p.NCCInvolvement {
		t.Consistency += 2
	}
	if p.AttemptNumber <= 1 {
		t.Consistency += 1
	}

	t.Leadership = clampInt(t.Leadership, 0, traitMax)
	t.Initiative = clampInt(t.Initiative, 0, traitMax)
	t.Responsibility = clampInt(t.Responsibility, 0, traitMax)
	t.SocialAdaptability = clampInt(t.SocialAdaptability, 0, traitMax)
	t.Confidence = clampInt(t.Confidence, 0, traitMax)
	t.Consistency = clampInt(t.Consistency, 0, traitMax)
	return t
}

// aggregateTraitScore is the weighted trait sum normalized to [0,100].
func aggregateTraitScore(t TraitScores) int {
	weighted := float64(t.Leadership)*weightLeadership +
		float64(t.Initiative)*weightInitiative +
		float64(t.Responsibility)*weightResponsibility +
		float64(t.SocialAdaptability)*weightSocialAdaptability +
		float64(t.Confidence)*weightConfidence +
		float64(t.Consistency)*weightConsistency
	return int(math.Round(weighted / piqMaxWeightedSum * 100))
}

// GenerateFollowUps walks the fixed rule list in interviewer-priority order
// and collects at most five questions. The order (leadership, initiative,
// sports absence, repeat attempt, social adaptability, confidence) must not
// change: earlier rules represent higher interview priority.
func GenerateFollowUps(t TraitScores, p Profile) []FollowUpQuestion {
	questions := make([]FollowUpQuestion, 0, maxFollowUps)

	if t.Leadership < weakTraitCutoff {
		questions = append(questions,
			FollowUpQuestion{
				Question: "Tell me about a time you took charge of a group without being asked.",
				Reason:   "Low leadership evidence in the biographical profile.",
				Trait:    "leadership",
			},
			FollowUpQuestion{
				Question: "Have you ever held any post or duty in school, college or your locality?",
				Reason:   "No position of responsibility reported.",
				Trait:    "leadership",
			})
	}
	if t.Initiative < weakTraitCutoff {
		questions = append(questions,
			FollowUpQuestion{
				Question: "Describe something you started on your own, without anyone directing you.",
				Reason:   "Low initiative evidence in the biographical profile.",
				Trait:    "initiative",
			},
			FollowUpQuestion{
				Question: "What do you do when you see a problem nobody else is addressing?",
				Reason:   "No self-started activity reported.",
				Trait:    "initiative",
			})
	}
	if p.SportsLevel == SportsNone || p.SportsLevel == "" {
		questions = append(questions, FollowUpQuestion{
			Question: "You have not played competitive sports. How do you keep yourself physically and mentally competitive?",
			Reason:   "No competitive sports participation reported.",
			Trait:    "social_adaptability",
		})
	}
	if p.AttemptNumber > 1 {
		questions = append(questions, FollowUpQuestion{
			Question: "What did you change in your preparation after your previous attempt?",
			Reason:   "Repeat attempt at the selection process.",
			Trait:    "consistency",
		})
	}
	if t.SocialAdaptability < weakTraitCutoff {
		questions = append(questions,
			FollowUpQuestion{
				Question: "How do you adjust when you are placed in a group of strangers?",
				Reason:   "Low social adaptability evidence in the biographical profile.",
				Trait:    "social_adaptability",
			},
			FollowUpQuestion{
				Question: "Tell me about a disagreement in a team and how you handled it.",
				Reason:   "Limited team exposure reported.",
				Trait:    "social_adaptability",
			})
	}
	if t.Confidence < weakTraitCutoff {
		questions = append(questions, FollowUpQuestion{
			Question: "Describe a situation where you had to speak or act in front of many people.",
			Reason:   "Low confidence evidence in the biographical profile.",
			Trait:    "confidence",
		})
	}

	if len(questions) > maxFollowUps {
		questions = questions[:maxFollowUps]
	}
	return questions
}

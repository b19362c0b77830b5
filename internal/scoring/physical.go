package scoring

import (
	"fmt"
	"math"
	"strings"
)

// BMICategory classifies the body-mass index.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMIFit         BMICategory = "Fit"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// PhysicalProfile is the body-metric and fitness self-report. Height and
// weight are expected to be clamped by the caller to [50,250] cm and
// [20,200] kg. Vision accepts "6/6" or "normal", "correctable", or any
// other value for an uncorrectable defect.
type PhysicalProfile struct {
	HeightCm       float64 `json:"height_cm"`
	WeightKg       float64 `json:"weight_kg"`
	Vision         string  `json:"vision"`
	FlatFoot       bool    `json:"flat_foot"`
	ColorBlind     bool    `json:"color_blind"`
	SurgeryHistory bool    `json:"surgery_history"`
	Pushups        int     `json:"pushups"`
	RunMinutes     float64 `json:"run_minutes"`
	Situps         int     `json:"situps"`
}

// PlanEntry is one week of the remediation plan.
type PlanEntry struct {
	Week int    `json:"week"`
	Task string `json:"task"`
}

// PhysicalResult is the full outcome of scoring a physical self-report.
type PhysicalResult struct {
	BMI             float64     `json:"bmi"`
	BMICategory     BMICategory `json:"bmi_category"`
	BodyMassScore   int         `json:"body_mass_score"`
	VisionScore     int         `json:"vision_score"`
	ConditionScore  int         `json:"condition_score"`
	FitnessScore    int         `json:"fitness_score"`
	AggregateScore  int         `json:"aggregate_score"`
	RiskLevel       RiskLevel   `json:"risk_level"`
	RemediationPlan []PlanEntry `json:"remediation_plan"`
}

// ScorePhysical converts the self-report into four sub-scores (body-mass
// 0-30, vision 0-25, conditions 0-25, fitness 0-25), an aggregate clamped
// to [0,100], a risk tier and a fixed four-week remediation plan.
func ScorePhysical(p PhysicalProfile) PhysicalResult {
	bmi := ComputeBMI(p.WeightKg, p.HeightCm)
	category := bmiCategory(bmi)

	bodyMass := bmiScore(category)
	vision := visionScore(p.Vision)
	condition := conditionScore(p)
	fitness := fitnessScore(p)

	aggregate := int(clampFloat(float64(bodyMass+vision+condition+fitness), 0, 100))
	return PhysicalResult{
		BMI:             bmi,
		BMICategory:     category,
		BodyMassScore:   bodyMass,
		VisionScore:     vision,
		ConditionScore:  condition,
		FitnessScore:    fitness,
		AggregateScore:  aggregate,
		RiskLevel:       riskFor(float64(aggregate), 75, 60),
		RemediationPlan: buildRemediationPlan(p, category, fitness),
	}
}

// ComputeBMI returns weight / height² rounded to two decimals.
func ComputeBMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	meters := heightCm / 100
	return math.Round(weightKg/(meters*meters)*100) / 100
}

func bmiCategory(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMIFit
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

func bmiScore(category BMICategory) int {
	switch category {
	case BMIFit:
		return 30
	case BMIUnderweight, BMIOverweight:
		return 20
	default:
		return 10
	}
}

func visionScore(vision string) int {
	switch strings.ToLower(strings.TrimSpace(vision)) {
	case "6/6", "normal":
		return 25
	case "correctable", "corrected":
		return 20
	default:
		return 0
	}
}

// conditionScore starts at 25 and deducts independently per flagged
// condition; deductions stack and the result is floored at 0.
func conditionScore(p PhysicalProfile) int {
	score := 25
	if p.FlatFoot {
		score -= 10
	}
	if p.ColorBlind {
		score -= 20
	}
	if p.SurgeryHistory {
		score -= 10
	}
	if score < 0 {
		score = 0
	}
	return score
}

func fitnessScore(p PhysicalProfile) int {
	var pushups int
	switch {
	case p.Pushups > 40:
		pushups = 10
	case p.Pushups >= 20:
		pushups = 7
	default:
		pushups = 4
	}

	var run int
	switch {
	case p.RunMinutes < 6:
		run = 10
	case p.RunMinutes <= 7:
		run = 8
	case p.RunMinutes <= 8:
		run = 6
	default:
		run = 4
	}

	var situps int
	switch {
	case p.Situps > 40:
		situps = 5
	case p.Situps >= 20:
		situps = 3
	default:
		situps = 2
	}

	return pushups + run + situps
}

const foundationalFitnessCutoff = 15

// buildRemediationPlan assembles the fixed four-week plan: week 1 targets
// body composition, week 2 strength, week 3 the most limiting structural
// condition, week 4 documentation or a comparative re-test.
func buildRemediationPlan(p PhysicalProfile, category BMICategory, fitness int) []PlanEntry {
	var week1 string
	switch category {
	case BMIUnderweight:
		week1 = "Increase daily calorie intake with protein-rich meals and track weight gain."
	case BMIOverweight, BMIObese:
		week1 = "Reduce daily calorie intake and add 30 minutes of cardio per day."
	default:
		week1 = "Maintain current diet and continue regular cardio to hold your fit BMI."
	}

	week2 := "Advanced strength block: weighted push-ups, interval runs and core circuits."
	if fitness < foundationalFitnessCutoff {
		week2 = "Foundational strength block: daily push-up ladder, brisk walks and basic core work."
	}

	var week3 string
	switch {
	case p.FlatFoot:
		week3 = "Arch-correction routine: towel curls, calf raises and supportive insoles."
	case visionScore(p.Vision) < 25:
		week3 = "Book an ophthalmology consultation and obtain a current vision prescription."
	default:
		week3 = "General mobility work: hip openers, shoulder dislocates and hamstring stretches."
	}

	var week4 string
	if p.ColorBlind || visionScore(p.Vision) < 25 {
		var docs []string
		if p.ColorBlind {
			docs = append(docs, "Ishihara test report")
		}
		if visionScore(p.Vision) < 25 {
			docs = append(docs, "ophthalmologist vision certificate")
		}
		week4 = fmt.Sprintf("Collect supporting medical documents: %s.", strings.Join(docs, ", "))
	} else {
		week4 = "Repeat all fitness counts and compare against week 1 to measure progress."
	}

	return []PlanEntry{
		{Week: 1, Task: week1},
		{Week: 2, Task: week2},
		{Week: 3, Task: week3},
		{Week: 4, Task: week4},
	}
}

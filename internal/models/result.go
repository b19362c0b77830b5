package models

import (
	"time"

	"gorm.io/datatypes"
)

// TestModule identifies which scoring engine produced a result row.
type TestModule string

const (
	ModuleSituational TestModule = "situational"
	ModuleStory       TestModule = "story"
	ModuleWord        TestModule = "word"
	ModulePIQ         TestModule = "piq"
	ModulePhysical    TestModule = "physical"
)

// CompositeModules are the four modules combined into the readiness index,
// with their fixed display order.
var CompositeModules = []TestModule{ModulePIQ, ModuleSituational, ModuleWord, ModuleStory}

// TestResult is one immutable evaluation outcome. The scoring engines never
// see this type: the service layer computes a result and freezes it here,
// with the module-specific breakdown (themes, traits, sub-scores, plans)
// serialized into Breakdown.
type TestResult struct {
	ID     uint       `json:"id" gorm:"primaryKey"`
	UserID uint       `json:"user_id" gorm:"not null;index:idx_results_user_module"`
	Module TestModule `json:"module" gorm:"not null;size:20;index:idx_results_user_module" validate:"required,test_module"`

	Score      float64 `json:"score" gorm:"not null"`
	MaxScore   float64 `json:"max_score" gorm:"not null"`
	Percentage float64 `json:"percentage" gorm:"not null" validate:"min=0,max=100"`
	RiskLevel  string  `json:"risk_level" gorm:"not null;size:10"`

	// Full engine output: theme breakdowns, trait scores, follow-up
	// questions, remediation plans.
	Breakdown datatypes.JSON `json:"breakdown" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at" gorm:"index"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

func (TestResult) TableName() string {
	return "test_results"
}

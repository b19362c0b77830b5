package utils

import (
	"reflect"
	"strings"

	apperrors "github.com/Souravshukla007/LakshyaSSB-sub001/internal/errors"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/models"
	"github.com/Souravshukla007/LakshyaSSB-sub001/internal/scoring"
	"github.com/go-playground/validator/v10"
)

// Validator wraps the struct validator with the platform's custom rules.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New()
	registerCustomValidators(validate)
	return &Validator{validate: validate}
}

// Validate checks struct tags and converts failures into the shared
// ValidationErrors type.
func (v *Validator) Validate(s interface{}) error {
	if err := v.validate.Struct(s); err != nil {
		if ve := apperrors.ToValidationErrors(err); len(ve) > 0 {
			return ve
		}
		return err
	}
	return nil
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("test_module", validateTestModule)
	validate.RegisterValidation("difficulty_level", validateDifficultyLevel)
	validate.RegisterValidation("sports_level", validateSportsLevel)
	validate.RegisterValidation("vision_category", validateVisionCategory)

	// json tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateTestModule(fl validator.FieldLevel) bool {
	validModules := []models.TestModule{
		models.ModuleSituational,
		models.ModuleStory,
		models.ModuleWord,
		models.ModulePIQ,
		models.ModulePhysical,
	}

	value := fl.Field().String()
	for _, validModule := range validModules {
		if string(validModule) == value {
			return true
		}
	}
	return false
}

func validateDifficultyLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		// difficulty is optional; the engines default to medium
		return true
	}

	validLevels := []scoring.Difficulty{
		scoring.DifficultyEasy,
		scoring.DifficultyMedium,
		scoring.DifficultyHard,
	}
	for _, validLevel := range validLevels {
		if string(validLevel) == value {
			return true
		}
	}
	return false
}

func validateVisionCategory(fl validator.FieldLevel) bool {
	switch strings.ToLower(strings.TrimSpace(fl.Field().String())) {
	case "6/6", "normal", "correctable", "corrected", "poor":
		return true
	}
	return false
}

func validateSportsLevel(fl validator.FieldLevel) bool {
	validLevels := []scoring.SportsLevel{
		scoring.SportsNone,
		scoring.SportsSchool,
		scoring.SportsDistrict,
		scoring.SportsState,
	}

	value := fl.Field().String()
	for _, validLevel := range validLevels {
		if string(validLevel) == value {
			return true
		}
	}
	return false
}

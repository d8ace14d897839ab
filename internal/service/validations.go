package service

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/habitproof/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once

	clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	habitCategories = map[string]struct{}{
		string(entity.CategoryHealth):       {},
		string(entity.CategoryProductivity): {},
		string(entity.CategoryWellness):     {},
		string(entity.CategoryFitness):      {},
		string(entity.CategoryLearning):     {},
		string(entity.CategoryLifestyle):    {},
		string(entity.CategoryCustom):       {},
	}
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Reminder times are stored as wall-clock HH:MM strings
		validate.RegisterValidation("clock_hhmm", func(fl validator.FieldLevel) bool {
			return clockPattern.MatchString(fl.Field().String())
		})
		validate.RegisterValidation("habit_category", func(fl validator.FieldLevel) bool {
			_, ok := habitCategories[fl.Field().String()]
			return ok
		})
	})
}

package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/hiyoko/dailystamp/internal/error_values"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
	})
}

// validateStruct folds validator output into the shared validation
// sentinel so handlers can map it to a 400.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return errors.Join(errorvalues.ErrValidation, validationErrors)
	}
	return errors.New("validation unexpected error: " + err.Error())
}

package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/stayhub/backend/internal/domain/inventory"
)

// RegisterValidations installs domain-aware validation tags on the gin
// binding engine. Safe to call more than once.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return inventory.Category(fl.Field().String()).IsValid()
	})
}

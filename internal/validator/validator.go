// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"budgetsplit/internal/models"
)

// countryCodeRegex matches a "+" followed by 1-4 digits, e.g. "+91".
var countryCodeRegex = regexp.MustCompile(`^\+[0-9]{1,4}$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		// "country_code" is a baked-in alias in validator/v10 (ISO 3166),
		// and aliases shadow registered validations. Register under a
		// distinct name and re-point the alias at it.
		_ = v.RegisterValidation("dialing_country_code", validateCountryCode)
		v.RegisterAlias("country_code", "dialing_country_code")
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.ValidCategory(models.Category(fl.Field().String()))
}

func validateCountryCode(fl validator.FieldLevel) bool {
	return countryCodeRegex.MatchString(fl.Field().String())
}

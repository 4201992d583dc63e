package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"furniture-shop/models"
)

var (
	zipPattern   = regexp.MustCompile(`^\d{4}$`)
	phonePattern = regexp.MustCompile(`^\d{11}$`)
)

// RegisterValidators installs the billing-form rules on gin's binding
// engine. Call once at startup before any request binds BillingDetails.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("province", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, province := range models.Provinces {
			if value == province {
				return true
			}
		}
		return false
	})

	v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipPattern.MatchString(fl.Field().String())
	})

	v.RegisterValidation("phone11", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}

package utils

import (
	"regexp"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	specialCharPattern = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercasePattern   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	datePattern        = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	slotPattern        = regexp.MustCompile(constvars.RegexTimeHHMM)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("date", validateDate)
	validate.RegisterValidation("slot", validateSlot)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return len(password) >= 8 && specialCharPattern.MatchString(password) && uppercasePattern.MatchString(password)
}

func validateDate(fl validator.FieldLevel) bool {
	return datePattern.MatchString(fl.Field().String())
}

func validateSlot(fl validator.FieldLevel) bool {
	return slotPattern.MatchString(fl.Field().String())
}

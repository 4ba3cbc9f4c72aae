package utils

import (
	"anubha-web/internal/pkg/constvars"
	"anubha-web/internal/pkg/exceptions"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate  *validator.Validate
	reEmail   = regexp.MustCompile(constvars.RegexEmail)
	reOTP4    = regexp.MustCompile(constvars.RegexOTP4)
	reDateYMD = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("mobile10", validateMobile10)
	validate.RegisterValidation("email_format", validateEmailFormat)
	validate.RegisterValidation("otp4", validateOTP4)
	validate.RegisterValidation("date_ymd", validateDateYMD)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsValidEmail applies the same rule as the email_format tag.
func IsValidEmail(email string) bool {
	return reEmail.MatchString(email)
}

func IsValidOTP(otp string) bool {
	return reOTP4.MatchString(otp)
}

// RequireFields fails with message when any value is blank.
func RequireFields(message string, values ...string) error {
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			return exceptions.ErrClientCustomMessage(nil, constvars.StatusBadRequest, message)
		}
	}
	return nil
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateMobile10(fl validator.FieldLevel) bool {
	return IsValidMobile(fl.Field().String())
}

func validateEmailFormat(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

func validateOTP4(fl validator.FieldLevel) bool {
	return IsValidOTP(fl.Field().String())
}

func validateDateYMD(fl validator.FieldLevel) bool {
	return reDateYMD.MatchString(fl.Field().String())
}

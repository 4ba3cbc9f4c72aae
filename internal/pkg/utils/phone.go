package utils

import (
	"anubha-web/internal/pkg/constvars"
	"regexp"
)

var (
	reNonDigit = regexp.MustCompile(constvars.RegexNonDigit)
	reMobile10 = regexp.MustCompile(constvars.RegexMobile10)
)

// DigitsOnly strips every non-digit rune, the way mobile inputs are typed into the form.
func DigitsOnly(input string) string {
	return reNonDigit.ReplaceAllString(input, "")
}

// IsValidMobile accepts exactly ten ASCII digits and nothing else.
func IsValidMobile(input string) bool {
	return reMobile10.MatchString(input)
}

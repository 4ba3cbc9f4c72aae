package utils

import "time"

const dateLayout = "2006-01-02"

// AgeFromDOB returns completed years at now, or 0 when dob cannot be parsed or is in the future.
func AgeFromDOB(dob string, now time.Time) int {
	birth, err := time.Parse(dateLayout, dob)
	if err != nil {
		return 0
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

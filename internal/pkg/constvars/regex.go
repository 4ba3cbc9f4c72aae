package constvars

const (
	RegexEmail           = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	RegexMobile10        = `^\d{10}$`
	RegexOTP4            = `^\d{4}$`
	RegexNonDigit        = `\D`
	RegexCooldownSeconds = `(\d+)\s+seconds`
	RegexDateYYYYMMDD    = `^\d{4}-\d{2}-\d{2}$`
)

package flows

import (
	"anubha-web/internal/pkg/constvars"
	"regexp"
	"strconv"
	"time"
)

var reCooldownSeconds = regexp.MustCompile(constvars.RegexCooldownSeconds)

// Cooldown gates OTP resends. Only the deadline is persisted, as unix milliseconds.
type Cooldown struct {
	ExpiresAt int64 `json:"expiresAt"`
}

func StartCooldown(now time.Time, seconds int) Cooldown {
	return Cooldown{ExpiresAt: now.Add(time.Duration(seconds) * time.Second).UnixMilli()}
}

// CooldownSeconds parses "... 42 seconds ..." out of a rate-limit message, falling back to fallback.
func CooldownSeconds(message string, fallback int) int {
	match := reCooldownSeconds.FindStringSubmatch(message)
	if len(match) < 2 {
		return fallback
	}
	seconds, err := strconv.Atoi(match[1])
	if err != nil || seconds <= 0 {
		return fallback
	}
	return seconds
}

// Remaining counts whole seconds left, rounded up, and never goes below zero.
func (c Cooldown) Remaining(now time.Time) int {
	left := c.ExpiresAt - now.UnixMilli()
	if left <= 0 {
		return 0
	}
	return int((left + 999) / 1000)
}

func (c Cooldown) CanResend(now time.Time) bool {
	return c.Remaining(now) == 0
}

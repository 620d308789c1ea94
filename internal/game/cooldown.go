package game

import (
	"math"
	"time"

	"github.com/sso-jung/lolchat/internal/domain"
)

// CheckCooldown fails with a *domain.CooldownError when window has not yet
// elapsed since lastAt, carrying the remaining whole seconds rounded up. A nil
// lastAt (action never performed) always passes. The guard records nothing;
// the caller stamps the new timestamp after the guarded action succeeds.
func CheckCooldown(lastAt *time.Time, window time.Duration, now time.Time) error {
	if lastAt == nil {
		return nil
	}
	elapsed := now.Sub(*lastAt)
	if elapsed < window {
		remaining := int(math.Ceil((window - elapsed).Seconds()))
		return &domain.CooldownError{Remaining: remaining}
	}
	return nil
}

package domain

import (
	"errors"
	"fmt"
)

// Catalog validation errors
var (
	ErrEmptyCatalog   = errors.New("champion catalog is empty")
	ErrUnknownRole    = errors.New("unknown champion role")
	ErrOrphanedSkills = errors.New("skill pool references unknown champion")
)

// ErrStateConflict reports that a guarded update matched no row because the
// player was no longer in the expected state. A concurrent command for the
// same player won the transition first.
var ErrStateConflict = errors.New("player is not in the expected state")

// CooldownError reports that a guarded action was attempted before its
// cooldown window elapsed. It is expected control flow, not a server fault:
// the boundary turns it into a normal chat reply.
type CooldownError struct {
	Remaining int // whole seconds left, rounded up
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown: retry in %d seconds", e.Remaining)
}

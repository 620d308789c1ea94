package repository

import (
	"context"

	"github.com/sso-jung/lolchat/internal/domain"
)

type PlayerRepository interface {
	// GetOrCreate returns the player for (roomID, userID), creating it with
	// IDLE defaults on first access. Safe under concurrent first access.
	GetOrCreate(ctx context.Context, roomID, userID string) (*domain.Player, error)
	Get(ctx context.Context, roomID, userID string) (*domain.Player, error)
	// Update applies a targeted multi-field update and returns the updated row.
	// A nil value in fields writes SQL NULL.
	Update(ctx context.Context, roomID, userID string, fields map[string]any) (*domain.Player, error)
	// UpdateIfState applies fields only while the player is still in expect,
	// failing with ErrStateConflict when a concurrent command changed the
	// state first. State transitions must go through this so that two
	// commands for the same player cannot both take the same transition.
	UpdateIfState(ctx context.Context, roomID, userID string, expect domain.PlayerState, fields map[string]any) (*domain.Player, error)
}

type SkillOwnedRepository interface {
	Create(ctx context.Context, skill *domain.SkillOwned) error
	GetByOwner(ctx context.Context, roomID, userID string) ([]*domain.SkillOwned, error)
	DeleteAllForOwner(ctx context.Context, roomID, userID string) error
}

type InventoryRepository interface {
	Create(ctx context.Context, item *domain.Inventory) error
	GetByOwner(ctx context.Context, roomID, userID string) ([]*domain.Inventory, error)
	DeleteAllForOwner(ctx context.Context, roomID, userID string) error
}

// Transactor runs fn with a repository set bound to a single transaction.
// An error from fn rolls everything back.
type Transactor interface {
	InTx(ctx context.Context, fn func(r *Repositories) error) error
}

type Repositories struct {
	Player     PlayerRepository
	SkillOwned SkillOwnedRepository
	Inventory  InventoryRepository
	Tx         Transactor
}

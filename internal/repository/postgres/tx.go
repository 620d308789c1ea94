package postgres

import (
	"context"

	"github.com/sso-jung/lolchat/internal/repository"
	"gorm.io/gorm"
)

type transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *transactor {
	return &transactor{db: db}
}

// InTx binds a fresh repository set to one gorm transaction. The dispatcher
// uses it for its two-write units (player update + skill insert, child
// deletes + player update) so a failure cannot leave the player half-updated.
func (t *transactor) InTx(ctx context.Context, fn func(r *repository.Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

package postgres

import (
	"context"

	"github.com/sso-jung/lolchat/internal/domain"
	"gorm.io/gorm"
)

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *inventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *domain.Inventory) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) GetByOwner(ctx context.Context, roomID, userID string) ([]*domain.Inventory, error) {
	var items []*domain.Inventory
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) DeleteAllForOwner(ctx context.Context, roomID, userID string) error {
	return r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Delete(&domain.Inventory{}).Error
}

package postgres

import (
	"context"

	"github.com/sso-jung/lolchat/internal/domain"
	"gorm.io/gorm"
)

type skillOwnedRepository struct {
	db *gorm.DB
}

func NewSkillOwnedRepository(db *gorm.DB) *skillOwnedRepository {
	return &skillOwnedRepository{db: db}
}

func (r *skillOwnedRepository) Create(ctx context.Context, skill *domain.SkillOwned) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *skillOwnedRepository) GetByOwner(ctx context.Context, roomID, userID string) ([]*domain.SkillOwned, error) {
	var skills []*domain.SkillOwned
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Order("created_at").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (r *skillOwnedRepository) DeleteAllForOwner(ctx context.Context, roomID, userID string) error {
	return r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Delete(&domain.SkillOwned{}).Error
}

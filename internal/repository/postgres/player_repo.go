package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sso-jung/lolchat/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) *playerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Get(ctx context.Context, roomID, userID string) (*domain.Player, error) {
	var player domain.Player
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) GetOrCreate(ctx context.Context, roomID, userID string) (*domain.Player, error) {
	now := time.Now()
	player := &domain.Player{
		ID:                uuid.New(),
		RoomID:            roomID,
		UserID:            userID,
		State:             domain.StateIdle,
		LP:                1000,
		Gold:              0,
		Tier:              "SILVER IV",
		DailyWaveResetAt:  now,
		LastWaveRecoverAt: now,
	}

	// The composite unique index on (room_id, user_id) makes concurrent first
	// access converge on one row: losers no-op on conflict and re-read.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(player).Error
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, roomID, userID)
}

func (r *playerRepository) Update(ctx context.Context, roomID, userID string, fields map[string]any) (*domain.Player, error) {
	err := r.db.WithContext(ctx).
		Model(&domain.Player{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Updates(fields).Error
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, roomID, userID)
}

func (r *playerRepository) UpdateIfState(ctx context.Context, roomID, userID string, expect domain.PlayerState, fields map[string]any) (*domain.Player, error) {
	// The state predicate makes the transition compare-and-swap: under READ
	// COMMITTED a concurrent UPDATE re-evaluates the WHERE clause against the
	// winner's committed row and matches nothing.
	res := r.db.WithContext(ctx).
		Model(&domain.Player{}).
		Where("room_id = ? AND user_id = ? AND state = ?", roomID, userID, expect).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrStateConflict
	}
	return r.Get(ctx, roomID, userID)
}

package testutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sso-jung/lolchat/internal/domain"
	"gorm.io/gorm"
)

// PlayerBuilder creates test players with a builder pattern
type PlayerBuilder struct {
	roomID          string
	userID          string
	state           domain.PlayerState
	championID      *string
	role            *domain.Role
	level           int
	waveCount       int
	lastSurrenderAt *time.Time
}

// NewPlayerBuilder creates a new PlayerBuilder with IDLE defaults
func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{
		roomID: fmt.Sprintf("room_%s", uuid.New().String()[:8]),
		userID: fmt.Sprintf("user_%s", uuid.New().String()[:8]),
		state:  domain.StateIdle,
	}
}

// WithIdentity sets the (roomID, userID) pair
func (b *PlayerBuilder) WithIdentity(roomID, userID string) *PlayerBuilder {
	b.roomID = roomID
	b.userID = userID
	return b
}

// Playing marks the player as mid-match on the given champion
func (b *PlayerBuilder) Playing(championID string, role domain.Role) *PlayerBuilder {
	b.state = domain.StatePlaying
	b.championID = &championID
	b.role = &role
	b.level = 1
	b.waveCount = 5
	return b
}

// WithLastSurrenderAt sets the cooldown anchor
func (b *PlayerBuilder) WithLastSurrenderAt(at time.Time) *PlayerBuilder {
	b.lastSurrenderAt = &at
	return b
}

// Build creates the player in the database
func (b *PlayerBuilder) Build(t *testing.T, db *gorm.DB) *domain.Player {
	t.Helper()

	player := &domain.Player{
		ID:                uuid.New(),
		RoomID:            b.roomID,
		UserID:            b.userID,
		State:             b.state,
		ChampionID:        b.championID,
		Role:              b.role,
		Level:             b.level,
		WaveCount:         b.waveCount,
		LP:                1000,
		Gold:              0,
		Tier:              "SILVER IV",
		DailyWaveResetAt:  time.Now(),
		LastWaveRecoverAt: time.Now(),
		LastSurrenderAt:   b.lastSurrenderAt,
	}

	if err := db.Create(player).Error; err != nil {
		t.Fatalf("failed to create player: %v", err)
	}

	return player
}

// CreateSkillOwned inserts a skill row for the given owner
func CreateSkillOwned(t *testing.T, db *gorm.DB, roomID, userID, skillID string) *domain.SkillOwned {
	t.Helper()

	skill := &domain.SkillOwned{
		ID:         uuid.New(),
		RoomID:     roomID,
		UserID:     userID,
		SkillID:    skillID,
		SkillLevel: 1,
	}
	if err := db.Create(skill).Error; err != nil {
		t.Fatalf("failed to create skill row: %v", err)
	}
	return skill
}

// CreateInventory inserts an item row for the given owner
func CreateInventory(t *testing.T, db *gorm.DB, roomID, userID, itemID string) *domain.Inventory {
	t.Helper()

	item := &domain.Inventory{
		ID:       uuid.New(),
		RoomID:   roomID,
		UserID:   userID,
		ItemID:   itemID,
		Quantity: 1,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create inventory row: %v", err)
	}
	return item
}

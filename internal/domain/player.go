package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PlayerState string

const (
	StateIdle    PlayerState = "IDLE"
	StatePlaying PlayerState = "PLAYING"
)

// Player is the per-(room, user) game progression row. A player is created
// lazily on the first command from a chat identity and is never deleted here.
type Player struct {
	ID                uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RoomID            string      `json:"roomId" gorm:"not null;uniqueIndex:idx_players_room_user"`
	UserID            string      `json:"userId" gorm:"not null;uniqueIndex:idx_players_room_user"`
	State             PlayerState `json:"state" gorm:"type:varchar(10);not null;default:'IDLE'"`
	ChampionID        *string     `json:"championId"`
	Role              *Role       `json:"role" gorm:"type:varchar(10)"`
	Level             int         `json:"level" gorm:"not null;default:0"`
	Exp               int         `json:"exp" gorm:"not null;default:0"`
	WaveCount         int         `json:"waveCount" gorm:"not null;default:0"`
	DailyWaveUsed     int         `json:"dailyWaveUsed" gorm:"not null;default:0"`
	DailyWaveResetAt  time.Time   `json:"dailyWaveResetAt"`
	LastWaveRecoverAt time.Time   `json:"lastWaveRecoverAt"`
	LP                int         `json:"lp" gorm:"column:lp;not null;default:1000"`
	Gold              int         `json:"gold" gorm:"not null;default:0"`
	Tier              string      `json:"tier" gorm:"not null;default:'SILVER IV'"`
	LastSurrenderAt   *time.Time  `json:"lastSurrenderAt"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

// SkillOwned is a skill held by a player during a match. Rows exist only
// while a match is (or very recently was) active; surrender removes them all.
type SkillOwned struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RoomID     string    `json:"roomId" gorm:"not null;index:idx_skills_owned_owner"`
	UserID     string    `json:"userId" gorm:"not null;index:idx_skills_owned_owner"`
	SkillID    string    `json:"skillId" gorm:"not null"`
	SkillLevel int       `json:"skillLevel" gorm:"not null;default:1"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (SkillOwned) TableName() string { return "skills_owned" }

// Inventory is an item row owned by a player. The commands implemented so far
// only ever bulk-delete these rows; the payload stays opaque.
type Inventory struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RoomID    string         `json:"roomId" gorm:"not null;index:idx_inventories_owner"`
	UserID    string         `json:"userId" gorm:"not null;index:idx_inventories_owner"`
	ItemID    string         `json:"itemId" gorm:"not null"`
	Quantity  int            `json:"quantity" gorm:"not null;default:1"`
	Data      datatypes.JSON `json:"data" gorm:"type:jsonb"`
	CreatedAt time.Time      `json:"createdAt"`
}

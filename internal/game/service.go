package game

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sso-jung/lolchat/internal/catalog"
	"github.com/sso-jung/lolchat/internal/domain"
	"github.com/sso-jung/lolchat/internal/repository"
)

const (
	CommandQueue     = "/queue"
	CommandSurrender = "/surrender"

	startingWaveCount = 5
)

// Service is the command dispatcher: it resolves the player for a chat
// identity, validates the command against the player's state and applies the
// resulting mutations. One instance serves all rooms; per-player consistency
// comes from the composite unique index and the transactional write units.
type Service struct {
	repos             *repository.Repositories
	catalog           *catalog.Catalog
	surrenderCooldown time.Duration
	now               func() time.Time
	commands          map[string]commandFunc
}

type commandFunc func(ctx context.Context, player *domain.Player) (string, error)

func NewService(repos *repository.Repositories, cat *catalog.Catalog, surrenderCooldown time.Duration) *Service {
	s := &Service{
		repos:             repos,
		catalog:           cat,
		surrenderCooldown: surrenderCooldown,
		now:               time.Now,
	}
	// Closed routing table: exact-match on the raw command string, anything
	// else falls through to the not-implemented reply.
	s.commands = map[string]commandFunc{
		CommandQueue:     s.queueRoll,
		CommandSurrender: s.surrender,
	}
	return s
}

// HandleCommand processes one inbound command for (roomID, userID) and
// returns the chat reply. The only expected error is *domain.CooldownError;
// anything else is a persistence failure for the boundary to log.
func (s *Service) HandleCommand(ctx context.Context, roomID, userID, command string) (string, error) {
	player, err := s.repos.Player.GetOrCreate(ctx, roomID, userID)
	if err != nil {
		return "", err
	}

	handler, ok := s.commands[command]
	if !ok {
		return formatNotImplemented(command), nil
	}
	return handler(ctx, player)
}

func (s *Service) queueRoll(ctx context.Context, player *domain.Player) (string, error) {
	if player.State == domain.StatePlaying {
		return msgAlreadyPlaying, nil
	}

	champ := pickOne(s.catalog.Champions())

	var startSkill *domain.Skill
	if pool := s.catalog.SkillsFor(champ.ID); len(pool) > 0 {
		picked := pickOne(pool)
		startSkill = &picked
	}

	now := s.now()
	err := s.repos.Tx.InTx(ctx, func(r *repository.Repositories) error {
		// Guarded on IDLE: a concurrent queue-roll that committed first flips
		// the state and this whole unit rolls back instead of granting a
		// second match.
		_, err := r.Player.UpdateIfState(ctx, player.RoomID, player.UserID, domain.StateIdle, map[string]any{
			"state":                domain.StatePlaying,
			"champion_id":          champ.ID,
			"role":                 champ.Role,
			"level":                1,
			"exp":                  0,
			"wave_count":           startingWaveCount,
			"daily_wave_used":      0,
			"last_wave_recover_at": now,
			"daily_wave_reset_at":  now,
		})
		if err != nil {
			return err
		}
		if startSkill != nil {
			return r.SkillOwned.Create(ctx, &domain.SkillOwned{
				ID:         uuid.New(),
				RoomID:     player.RoomID,
				UserID:     player.UserID,
				SkillID:    startSkill.ID,
				SkillLevel: 1,
			})
		}
		return nil
	})
	if errors.Is(err, domain.ErrStateConflict) {
		return msgAlreadyPlaying, nil
	}
	if err != nil {
		return "", err
	}

	return FormatWelcome(champ, 1, 0, startSkill), nil
}

func (s *Service) surrender(ctx context.Context, player *domain.Player) (string, error) {
	if player.State != domain.StatePlaying {
		return msgNotPlaying, nil
	}

	if err := CheckCooldown(player.LastSurrenderAt, s.surrenderCooldown, s.now()); err != nil {
		return "", err
	}

	var updated *domain.Player
	err := s.repos.Tx.InTx(ctx, func(r *repository.Repositories) error {
		if err := r.Inventory.DeleteAllForOwner(ctx, player.RoomID, player.UserID); err != nil {
			return err
		}
		if err := r.SkillOwned.DeleteAllForOwner(ctx, player.RoomID, player.UserID); err != nil {
			return err
		}
		// Guarded on PLAYING: if a concurrent surrender already ended the
		// match, the deletes above roll back and nothing is double-applied.
		var err error
		updated, err = r.Player.UpdateIfState(ctx, player.RoomID, player.UserID, domain.StatePlaying, map[string]any{
			"state":             domain.StateIdle,
			"champion_id":       nil,
			"role":              nil,
			"level":             0,
			"exp":               0,
			"wave_count":        0,
			"daily_wave_used":   0,
			"last_surrender_at": s.now(),
		})
		return err
	})
	if errors.Is(err, domain.ErrStateConflict) {
		return msgNotPlaying, nil
	}
	if err != nil {
		return "", err
	}

	return formatSurrender(updated.LP, updated.Gold), nil
}

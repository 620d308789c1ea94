package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sso-jung/lolchat/internal/domain"
)

// Catalog holds the immutable champion roster and per-champion skill pools.
// It is loaded once before any command is served and is safe for concurrent
// readers; nothing mutates it afterwards.
type Catalog struct {
	champions []domain.Champion
	skills    map[string][]domain.Skill
}

// New builds a catalog from in-memory data. Used by tests and by Load.
func New(champions []domain.Champion, skillsByChampion map[string][]domain.Skill) (*Catalog, error) {
	if len(champions) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	known := make(map[string]bool, len(champions))
	for _, c := range champions {
		if !c.Role.IsValid() {
			return nil, fmt.Errorf("champion %s: %w: %q", c.ID, domain.ErrUnknownRole, c.Role)
		}
		known[c.ID] = true
	}
	for championID := range skillsByChampion {
		if !known[championID] {
			return nil, fmt.Errorf("%w: %q", domain.ErrOrphanedSkills, championID)
		}
	}

	return &Catalog{champions: champions, skills: skillsByChampion}, nil
}

// Load reads the champion roster and skill pools from two JSON files.
func Load(championsPath, skillsPath string) (*Catalog, error) {
	var champions []domain.Champion
	if err := readJSON(championsPath, &champions); err != nil {
		return nil, fmt.Errorf("failed to load champions: %w", err)
	}

	var skills map[string][]domain.Skill
	if err := readJSON(skillsPath, &skills); err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}

	return New(champions, skills)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Champions returns the full roster in catalog order.
func (c *Catalog) Champions() []domain.Champion {
	return c.champions
}

// SkillsFor returns a champion's skill pool, possibly empty.
func (c *Catalog) SkillsFor(championID string) []domain.Skill {
	return c.skills[championID]
}

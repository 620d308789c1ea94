package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sso-jung/lolchat/internal/catalog"
	"github.com/sso-jung/lolchat/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	championsPath := writeFile(t, dir, "champions.json", `[
		{"id": "AHRI", "name": "Ahri", "role": "MAGE"},
		{"id": "DARIUS", "name": "Darius", "role": "FIGHTER"}
	]`)
	skillsPath := writeFile(t, dir, "skills.json", `{
		"AHRI": [
			{"id": "AHRI_Q", "name": "Orb of Deception"},
			{"id": "AHRI_E", "name": "Charm"}
		]
	}`)

	cat, err := catalog.Load(championsPath, skillsPath)
	require.NoError(t, err)

	champions := cat.Champions()
	require.Len(t, champions, 2)
	assert.Equal(t, "AHRI", champions[0].ID)
	assert.Equal(t, domain.RoleMage, champions[0].Role)

	skills := cat.SkillsFor("AHRI")
	require.Len(t, skills, 2)
	assert.Equal(t, "AHRI_Q", skills[0].ID)

	// A champion without a configured pool yields an empty slice, not an error.
	assert.Empty(t, cat.SkillsFor("DARIUS"))
	assert.Empty(t, cat.SkillsFor("NOBODY"))
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	skillsPath := writeFile(t, dir, "skills.json", `{}`)

	_, err := catalog.Load(filepath.Join(dir, "nope.json"), skillsPath)
	assert.Error(t, err)
}

func TestNewValidation(t *testing.T) {
	ahri := domain.Champion{ID: "AHRI", Name: "Ahri", Role: domain.RoleMage}

	t.Run("empty roster", func(t *testing.T) {
		_, err := catalog.New(nil, nil)
		assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := catalog.New([]domain.Champion{
			{ID: "BADDY", Name: "Baddy", Role: domain.Role("DANCER")},
		}, nil)
		assert.ErrorIs(t, err, domain.ErrUnknownRole)
	})

	t.Run("skills for unknown champion", func(t *testing.T) {
		_, err := catalog.New([]domain.Champion{ahri}, map[string][]domain.Skill{
			"GHOST": {{ID: "GHOST_Q", Name: "Haunt"}},
		})
		assert.ErrorIs(t, err, domain.ErrOrphanedSkills)
	})

	t.Run("valid", func(t *testing.T) {
		cat, err := catalog.New([]domain.Champion{ahri}, map[string][]domain.Skill{
			"AHRI": {{ID: "AHRI_Q", Name: "Orb of Deception"}},
		})
		require.NoError(t, err)
		assert.Len(t, cat.Champions(), 1)
	})
}

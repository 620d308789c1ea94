package domain_test

import (
	"testing"

	"github.com/sso-jung/lolchat/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoleDisplayName(t *testing.T) {
	tests := []struct {
		role domain.Role
		want string
	}{
		{domain.RoleTanker, "Tanker"},
		{domain.RoleMage, "Mage"},
		{domain.RoleAssassin, "Assassin"},
		{domain.RoleADC, "Marksman"},
		{domain.RoleSupporter, "Support"},
		{domain.RoleFighter, "Fighter"},
		{domain.Role("JUNGLER"), "JUNGLER"}, // unmapped falls back to the raw value
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.DisplayName())
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, role := range domain.AllRoles {
		assert.True(t, role.IsValid(), "%s should be valid", role)
	}
	assert.False(t, domain.Role("JUNGLER").IsValid())
	assert.False(t, domain.Role("").IsValid())
}

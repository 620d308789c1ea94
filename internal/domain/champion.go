package domain

// Role represents a champion's combat role
type Role string

const (
	RoleTanker    Role = "TANKER"
	RoleMage      Role = "MAGE"
	RoleAssassin  Role = "ASSASSIN"
	RoleADC       Role = "ADC"
	RoleSupporter Role = "SUPPORTER"
	RoleFighter   Role = "FIGHTER"
)

// AllRoles contains all valid roles in order
var AllRoles = []Role{RoleTanker, RoleMage, RoleAssassin, RoleADC, RoleSupporter, RoleFighter}

// IsValid checks if a role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleTanker, RoleMage, RoleAssassin, RoleADC, RoleSupporter, RoleFighter:
		return true
	}
	return false
}

// String returns the string representation of the role
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a user-friendly display name for the role
func (r Role) DisplayName() string {
	switch r {
	case RoleTanker:
		return "Tanker"
	case RoleMage:
		return "Mage"
	case RoleAssassin:
		return "Assassin"
	case RoleADC:
		return "Marksman"
	case RoleSupporter:
		return "Support"
	case RoleFighter:
		return "Fighter"
	default:
		return string(r)
	}
}

// Champion is an immutable catalog record. Champions are loaded once at
// startup and never written back.
type Champion struct {
	ID   string `json:"id"`   // e.g., "AHRI"
	Name string `json:"name"` // Display name
	Role Role   `json:"role"`
}

// Skill is an immutable catalog record. The trailing id suffix encodes the
// skill slot: _P, _Q, _W, _E or _R.
type Skill struct {
	ID   string `json:"id"` // e.g., "AHRI_Q"
	Name string `json:"name"`
}

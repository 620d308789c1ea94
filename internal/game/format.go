package game

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sso-jung/lolchat/internal/domain"
)

// levelUpExp is the XP needed for the next level. Leveling past 1 is not
// wired to any command yet, so this stays a constant.
const levelUpExp = 100

const (
	msgAlreadyPlaying = "You are already in a match. Push your lane and grow stronger."
	msgNotPlaying     = "You are not currently in a match.\nType /queue to start a new one."
)

var skillSlotPattern = regexp.MustCompile(`_([PQWER])$`)

// SkillSlotLabel extracts the slot letter from a skill id suffix, "?" when
// the id does not carry one.
func SkillSlotLabel(skillID string) string {
	m := skillSlotPattern.FindStringSubmatch(skillID)
	if m == nil {
		return "?"
	}
	return m[1]
}

// FormatWelcome renders the multi-line queue-roll reply.
func FormatWelcome(champ domain.Champion, level, exp int, startSkill *domain.Skill) string {
	skillText := "None"
	if startSkill != nil {
		skillText = fmt.Sprintf("%s(%s) Lv1", SkillSlotLabel(startSkill.ID), startSkill.Name)
	}

	var b strings.Builder
	b.WriteString("=========================\n")
	b.WriteString("Welcome to the map.\n")
	b.WriteString("=========================\n")
	fmt.Fprintf(&b, "Champion : %s (%s)\n", champ.Name, champ.Role.DisplayName())
	fmt.Fprintf(&b, "Level : %d (%d / %dXP)\n", level, exp, levelUpExp)
	fmt.Fprintf(&b, "Skills : %s\n", skillText)
	b.WriteString("Items : None")
	return b.String()
}

func formatSurrender(lp, gold int) string {
	return fmt.Sprintf("The match has ended. Queue up again to start a new one. / Current LP=%d, gold=%d", lp, gold)
}

func formatNotImplemented(command string) string {
	return fmt.Sprintf("command not implemented: %s", command)
}

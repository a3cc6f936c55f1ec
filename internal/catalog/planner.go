package catalog

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

// unlockPathLength is how many classes a suggested path lists
const unlockPathLength = 4

var preferenceOrder = map[domain.Playstyle][]string{
	domain.PlaystyleSteady:  {"odd-jobber", "sprinter", "porter", "veterinarian"},
	domain.PlaystyleCombat:  {"odd-jobber", "baseballer", "veterinarian", "porter"},
	domain.PlaystyleRunner:  {"odd-jobber", "sprinter", "porter", "baseballer"},
	domain.PlaystyleSupport: {"odd-jobber", "veterinarian", "chef", "porter"},
}

// fallbackOrder pads every playstyle once its preferences are exhausted
var fallbackOrder = []string{"sprinter", "porter", "baseballer", "chef"}

// Unlock reasons
const (
	ReasonStarter = "Stay here until you internalize every monster and loot curve."
	ReasonRunner  = "Speed gets you to elevators faster and salvages greedy pushes."
	ReasonSupport = "Keeps squads healthy so they can greed more floors."
	ReasonCarry   = "Bigger bags turn every run into cash even with average loot."
	ReasonDPS     = "Delete priority mobs and protect Porters or Sprinters."
	ReasonDefault = "Reliable upgrade over Odd Jobber."
)

// ParsePlaystyle validates a user-supplied playstyle name
func ParsePlaystyle(s string) (domain.Playstyle, error) {
	style := domain.Playstyle(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := preferenceOrder[style]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPlaystyle, s)
	}
	return style, nil
}

// UnlockPath suggests the next classes to buy for a playstyle and how much
// more gold each one needs.
func (c *Catalog) UnlockPath(gold int, style domain.Playstyle) ([]domain.UnlockStep, error) {
	prefs, ok := preferenceOrder[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPlaystyle, style)
	}

	ordered := lo.Filter(lo.Uniq(append(append([]string{}, prefs...), fallbackOrder...)), func(id string, _ int) bool {
		_, known := c.byID[id]
		return known
	})
	if len(ordered) > unlockPathLength {
		ordered = ordered[:unlockPathLength]
	}

	return lo.Map(ordered, func(id string, index int) domain.UnlockStep {
		info := c.byID[id]
		return domain.UnlockStep{
			Class:  info,
			Wait:   max(0, info.UnlockCost-gold),
			Reason: unlockReason(info, index),
		}
	}), nil
}

func unlockReason(info domain.ClassInfo, index int) string {
	if index == 0 && info.UnlockCost == 0 {
		return ReasonStarter
	}
	switch info.Role {
	case domain.RoleRunner:
		return ReasonRunner
	case domain.RoleSupport:
		return ReasonSupport
	case domain.RoleCarry:
		return ReasonCarry
	case domain.RoleDPS:
		return ReasonDPS
	default:
		return ReasonDefault
	}
}

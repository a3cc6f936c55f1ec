package catalog

import (
	"fmt"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/utils"
)

// File names inside the catalog directory
const (
	ClassesFile  = "classes.yaml"
	MonstersFile = "monsters.yaml"
)

type classesFile struct {
	Classes []domain.ClassInfo `yaml:"classes"`
}

type monstersFile struct {
	Monsters []domain.Monster `yaml:"monsters"`
}

// Load reads the class and monster files from dir and validates them
func Load(dir string) (*Catalog, error) {
	var classes classesFile
	if err := utils.LoadYAML(filepath.Join(dir, ClassesFile), &classes); err != nil {
		return nil, fmt.Errorf("failed to load classes: %w", err)
	}

	var monsters monstersFile
	if err := utils.LoadYAML(filepath.Join(dir, MonstersFile), &monsters); err != nil {
		return nil, fmt.Errorf("failed to load monsters: %w", err)
	}

	if err := validateClasses(classes.Classes); err != nil {
		return nil, fmt.Errorf("invalid classes catalog: %w", err)
	}
	if err := validateMonsters(monsters.Monsters); err != nil {
		return nil, fmt.Errorf("invalid monsters catalog: %w", err)
	}

	return New(classes.Classes, monsters.Monsters), nil
}

func validateClasses(classes []domain.ClassInfo) error {
	seen := make(map[string]bool, len(classes))
	for _, c := range classes {
		if c.ID == "" {
			return fmt.Errorf("class %q has no id", c.Name)
		}
		if seen[c.ID] {
			return fmt.Errorf("duplicate class id %q", c.ID)
		}
		seen[c.ID] = true

		if !domain.IsKnownClass(c.Name) {
			return fmt.Errorf("class %q has unknown name %q", c.ID, c.Name)
		}
		if c.UnlockCost < 0 {
			return fmt.Errorf("class %q has negative unlock cost", c.ID)
		}
		if !lo.Contains([]domain.ClassRole{domain.RoleDPS, domain.RoleSupport, domain.RoleCarry, domain.RoleRunner}, c.Role) {
			return fmt.Errorf("class %q has unknown role %q", c.ID, c.Role)
		}
	}
	return nil
}

func validateMonsters(monsters []domain.Monster) error {
	seen := make(map[string]bool, len(monsters))
	for _, m := range monsters {
		if m.ID == "" {
			return fmt.Errorf("monster %q has no id", m.Name)
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate monster id %q", m.ID)
		}
		seen[m.ID] = true

		if m.DangerLevel < 1 || m.DangerLevel > 3 {
			return fmt.Errorf("monster %q danger level %d outside 1-3", m.ID, m.DangerLevel)
		}
		if lo.SomeBy(m.Floors, func(f int) bool { return f < 1 }) {
			return fmt.Errorf("monster %q lists a floor below 1", m.ID)
		}
	}
	return nil
}

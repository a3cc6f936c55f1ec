package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

// Catalog is read-only reference data for classes and monsters.
// It is never consulted by the EV estimator.
type Catalog struct {
	classes  []domain.ClassInfo
	byID     map[string]domain.ClassInfo
	monsters []domain.Monster
}

// New builds a catalog from already-validated data
func New(classes []domain.ClassInfo, monsters []domain.Monster) *Catalog {
	return &Catalog{
		classes:  slices.Clone(classes),
		byID:     lo.KeyBy(classes, func(c domain.ClassInfo) string { return c.ID }),
		monsters: slices.Clone(monsters),
	}
}

// Classes returns every class in catalog order
func (c *Catalog) Classes() []domain.ClassInfo {
	return slices.Clone(c.classes)
}

// Class looks up a class by id
func (c *Catalog) Class(id string) (domain.ClassInfo, error) {
	info, ok := c.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return domain.ClassInfo{}, fmt.Errorf("%w: %s", domain.ErrClassNotFound, id)
	}
	return info, nil
}

// Monsters returns every monster in catalog order
func (c *Catalog) Monsters() []domain.Monster {
	return slices.Clone(c.monsters)
}

// MonstersOnFloor returns monsters known to spawn on floor
func (c *Catalog) MonstersOnFloor(floor int) []domain.Monster {
	return lo.Filter(c.monsters, func(m domain.Monster, _ int) bool {
		return slices.Contains(m.Floors, floor)
	})
}

// CheckHealth reports an empty catalog as not ready
func (c *Catalog) CheckHealth(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(c.classes) == 0 || len(c.monsters) == 0 {
		return domain.ErrCatalogEmpty
	}
	return nil
}

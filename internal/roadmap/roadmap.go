package roadmap

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/utils"
)

// Generator maps the template through a run style. Stateless after construction.
type Generator struct {
	tmpl Template
}

// NewGenerator creates a generator over a private copy of t
func NewGenerator(t Template) *Generator {
	entries := lo.Map(t.Entries, func(e Entry, _ int) Entry {
		e.Tips = slices.Clone(e.Tips)
		return e
	})
	t.Entries = entries
	t.StyleOffsets = lo.Assign(t.StyleOffsets)
	return &Generator{tmpl: t}
}

var defaultGenerator = NewGenerator(DefaultTemplate())

// GenerateRunPlan builds the default ten-run roadmap for style
func GenerateRunPlan(style domain.RunStyle, hasSquad bool) []domain.RunPlan {
	return defaultGenerator.GenerateRunPlan(style, hasSquad)
}

// GenerateRunPlan applies the style offset and conditional tips to every template entry.
// Unknown styles get no offset.
func (g *Generator) GenerateRunPlan(style domain.RunStyle, hasSquad bool) []domain.RunPlan {
	offset := g.tmpl.StyleOffsets[style]

	return lo.Map(g.tmpl.Entries, func(entry Entry, index int) domain.RunPlan {
		tips := make([]string, 0, len(entry.Tips)+2)
		tips = append(tips, entry.Tips...)

		if hasSquad {
			tips = append(tips, g.tmpl.SquadTip)
		} else {
			tips = append(tips, g.tmpl.SoloTip)
		}

		switch {
		case style == domain.RunStyleGreedy && index >= g.tmpl.GreedyFromIndex:
			tips = append(tips, g.tmpl.GreedyTip)
		case style == domain.RunStyleSafe && index <= g.tmpl.SafeUntilIndex:
			tips = append(tips, g.tmpl.SafeTip)
		}

		return domain.RunPlan{
			RunIndex:    index + 1,
			TargetFloor: utils.ClampInt(entry.TargetFloor+offset, g.tmpl.MinFloor, g.tmpl.MaxFloor),
			Focus:       entry.Focus,
			Tips:        tips,
		}
	})
}

// ParseRunStyle validates a user-supplied style name
func ParseRunStyle(s string) (domain.RunStyle, error) {
	style := domain.RunStyle(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(domain.RunStyles, style) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidRunStyle, s)
	}
	return style, nil
}

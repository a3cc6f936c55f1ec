package discord

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// Embed colours
const (
	ColorDanger  = 0xe74c3c
	ColorNeutral = 0xf1c40f
	ColorSuccess = 0x2ecc71
	ColorInfo    = 0x3498db
)

// formatCredits renders an amount with thousands separators, e.g. "12,345 cr"
func formatCredits(v float64) string {
	return printer.Sprintf("%.0f cr", v)
}

// formatGold renders a gold amount with thousands separators
func formatGold(v int) string {
	return printer.Sprintf("%d", v)
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// titleCase turns "greedy" into "Greedy"
func titleCase(s string) string {
	return titler.String(strings.ToLower(s))
}

func toneColor(t domain.Tone) int {
	switch t {
	case domain.ToneDanger:
		return ColorDanger
	case domain.ToneSuccess:
		return ColorSuccess
	default:
		return ColorNeutral
	}
}

func decisionEmoji(d domain.Decision) string {
	switch d {
	case domain.DecisionEvacuate:
		return "🛗"
	case domain.DecisionDeeper:
		return "⬇️"
	default:
		return "⚖️"
	}
}

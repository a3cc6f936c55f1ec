package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
)

// EV command option names
const (
	optCurrent   = "current"
	optTarget    = "target"
	optAlive     = "alive"
	optClass     = "class"
	optInventory = "inventory"
	optTime      = "time"
	optRisk      = "risk"
)

// EVCommand returns the /ev command definition and handler
func EVCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minFloor := 1.0
	minAlive := 1.0
	minValue := 0.0

	cmd := &discordgo.ApplicationCommand{
		Name:        "ev",
		Description: "Should the squad take the elevator or push deeper?",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        optCurrent,
				Description: "Floor you are on",
				Required:    true,
				MinValue:    &minFloor,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        optTarget,
				Description: "Floor you are thinking about",
				Required:    true,
				MinValue:    &minFloor,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        optAlive,
				Description: "Players still alive (1-4)",
				Required:    true,
				MinValue:    &minAlive,
				MaxValue:    4,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optClass,
				Description: "Your class",
				Required:    true,
				Choices: lo.Map(domain.PlayerClasses, func(c domain.PlayerClass, _ int) *discordgo.ApplicationCommandOptionChoice {
					return &discordgo.ApplicationCommandOptionChoice{Name: string(c), Value: string(c)}
				}),
			},
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        optInventory,
				Description: "Value in the backpack",
				Required:    true,
				MinValue:    &minValue,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optTime,
				Description: "Time left before the vote",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Plenty", Value: string(domain.TimeLeftHigh)},
					{Name: "Some", Value: string(domain.TimeLeftMid)},
					{Name: "Almost none", Value: string(domain.TimeLeftLow)},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        optRisk,
				Description: "How greedy the squad feels (default: normal)",
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Safe", Value: string(domain.RiskSafe)},
					{Name: "Normal", Value: string(domain.RiskNormal)},
					{Name: "Risky", Value: string(domain.RiskRisky)},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		input := evInputFromOptions(getOptions(i))
		handleEmbedResponse(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			result, err := client.Calculate(ctx, input)
			if err != nil {
				return nil, err
			}
			return buildEVEmbed(input, result), nil
		})
	}

	return cmd, handler
}

// evInputFromOptions builds calculator input; missing options keep their zero
// value and are rejected by the API.
func evInputFromOptions(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) domain.CalculatorInput {
	input := domain.CalculatorInput{RiskPreference: domain.RiskNormal}
	if o, ok := opts[optCurrent]; ok {
		input.CurrentFloor = int(o.IntValue())
	}
	if o, ok := opts[optTarget]; ok {
		input.TargetFloor = int(o.IntValue())
	}
	if o, ok := opts[optAlive]; ok {
		input.AlivePlayers = int(o.IntValue())
	}
	if o, ok := opts[optClass]; ok {
		input.PlayerClass = domain.PlayerClass(o.StringValue())
	}
	if o, ok := opts[optInventory]; ok {
		input.InventoryValue = o.FloatValue()
	}
	if o, ok := opts[optTime]; ok {
		input.TimeLeftTier = domain.TimeLeftTier(o.StringValue())
	}
	if o, ok := opts[optRisk]; ok {
		input.RiskPreference = domain.RiskPreference(o.StringValue())
	}
	return input
}

func buildEVEmbed(input domain.CalculatorInput, result *domain.CalculationResult) *discordgo.MessageEmbed {
	embed := createEmbed(
		fmt.Sprintf("%s %s", decisionEmoji(result.Decision), result.DecisionTitle),
		result.Reasoning,
		toneColor(result.Tone),
		fmt.Sprintf("Floor %d → %d · %d alive · %s · %s", input.CurrentFloor, input.TargetFloor,
			input.AlivePlayers, input.PlayerClass, FooterSherpa),
	)

	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: FieldDeathChance, Value: formatPercent(result.DeathProb), Inline: true},
		{Name: FieldDanger, Value: result.DangerLabel, Inline: true},
		{Name: FieldGain, Value: formatCredits(float64(result.EstimatedGain)), Inline: true},
		{Name: FieldEVStay, Value: formatCredits(result.EVStay), Inline: true},
		{Name: FieldEVGo, Value: formatCredits(result.EVGo), Inline: true},
	}

	if len(result.Notes) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  FieldNotes,
			Value: "• " + strings.Join(result.Notes, "\n• "),
		})
	}

	return embed
}

package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/handler"
)

// PlanCommand returns the /plan command definition and handler
func PlanCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "plan",
		Description: "Ten-run roadmap for a new crew",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "style",
				Description: "How hard to push (default: balanced)",
				Choices: lo.Map(domain.RunStyles, func(st domain.RunStyle, _ int) *discordgo.ApplicationCommandOptionChoice {
					return &discordgo.ApplicationCommandOptionChoice{Name: titleCase(string(st)), Value: string(st)}
				}),
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "squad",
				Description: "Playing with a squad (default: no)",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opts := getOptions(i)
		style := string(domain.RunStyleBalanced)
		if o, ok := opts["style"]; ok {
			style = o.StringValue()
		}
		squad := false
		if o, ok := opts["squad"]; ok {
			squad = o.BoolValue()
		}

		handleEmbedResponse(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			plan, err := client.RunPlan(ctx, style, squad)
			if err != nil {
				return nil, err
			}
			return buildPlanEmbed(plan), nil
		})
	}

	return cmd, handler
}

func buildPlanEmbed(plan *handler.RoadmapResponse) *discordgo.MessageEmbed {
	crew := LabelSolo
	if plan.HasSquad {
		crew = LabelSquad
	}

	embed := createEmbed(fmt.Sprintf(TitleRunPlan, titleCase(string(plan.Style))), crew, ColorInfo, "")
	embed.Fields = lo.Map(plan.Plan, func(run domain.RunPlan, _ int) *discordgo.MessageEmbedField {
		var b strings.Builder
		fmt.Fprintf(&b, "**%s**", run.Focus)
		for _, tip := range run.Tips {
			b.WriteString("\n• " + tip)
		}
		return &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Run %d · Floor %d", run.RunIndex, run.TargetFloor),
			Value: b.String(),
		}
	})
	return embed
}

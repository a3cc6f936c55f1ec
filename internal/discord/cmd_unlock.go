package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/handler"
)

// UnlockCommand returns the /unlock command definition and handler
func UnlockCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minGold := 0.0

	cmd := &discordgo.ApplicationCommand{
		Name:        "unlock",
		Description: "Which classes to buy next",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "gold",
				Description: "Gold you have saved",
				Required:    true,
				MinValue:    &minGold,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "style",
				Description: "How you like to play (default: steady)",
				Choices: lo.Map(domain.Playstyles, func(p domain.Playstyle, _ int) *discordgo.ApplicationCommandOptionChoice {
					return &discordgo.ApplicationCommandOptionChoice{Name: titleCase(string(p)), Value: string(p)}
				}),
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		opts := getOptions(i)
		gold := 0
		if o, ok := opts["gold"]; ok {
			gold = int(o.IntValue())
		}
		style := string(domain.PlaystyleSteady)
		if o, ok := opts["style"]; ok {
			style = o.StringValue()
		}

		handleEmbedResponse(s, i, cmd.Name, func(ctx context.Context) (*discordgo.MessageEmbed, error) {
			path, err := client.UnlockPath(ctx, gold, style)
			if err != nil {
				return nil, err
			}
			return buildUnlockEmbed(path), nil
		})
	}

	return cmd, handler
}

func buildUnlockEmbed(path *handler.UnlockPathResponse) *discordgo.MessageEmbed {
	embed := createEmbed(
		fmt.Sprintf(TitleUnlockPath, titleCase(string(path.Style))),
		fmt.Sprintf("Saved gold: **%s**", formatGold(path.Gold)),
		ColorInfo,
		"",
	)
	embed.Fields = lo.Map(path.Steps, func(step domain.UnlockStep, index int) *discordgo.MessageEmbedField {
		wait := LabelReady
		if step.Wait > 0 {
			wait = fmt.Sprintf("⏳ %s more gold", formatGold(step.Wait))
		}
		return &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%d. %s (%s gold)", index+1, step.Class.Name, formatGold(step.Class.UnlockCost)),
			Value: fmt.Sprintf("%s\n%s", wait, step.Reason),
		}
	})
	return embed
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/Yiqing888/deadlydelivery.app/internal/config"
	"github.com/Yiqing888/deadlydelivery.app/internal/discord"
	"github.com/Yiqing888/deadlydelivery.app/internal/logger"
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	if err := run(); err != nil {
		slog.Error("Discord bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadDiscord()
	if err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.ServiceNameDiscord, "", "", false))
	slog.Info("Configured API URL", "url", cfg.APIURL)

	warnings, err := config.ValidateEnvWithWarnings(config.DiscordRequiredEnvVars)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	bot, err := discord.New(discord.Config{
		Token:   cfg.Token,
		AppID:   cfg.AppID,
		GuildID: cfg.DevGuildID,
		APIURL:  cfg.APIURL,
		APIKey:  cfg.APIKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	healthServer := discord.NewHTTPServer(cfg.HealthPort, bot)
	healthServer.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		healthServer.Stop(ctx)
	}()

	registerCommands(bot, getCommandFactories())

	if cfg.ForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.ForceCommandUpdate); err != nil {
		// Commands registered by an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return bot.Run(ctx)
}

// getCommandFactories returns every slash command the bot serves
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.EVCommand,
		discord.PlanCommand,
		discord.UnlockCommand,
	}
}

func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
	slog.Info("Registered command handlers", "count", len(factories))
}

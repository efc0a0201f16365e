package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	pkgconfig "github.com/Vodeneev/oddsline/internal/pkg/config"
	"github.com/Vodeneev/oddsline/internal/pkg/logging"
)

const (
	defaultConfigPath = "configs/config.yaml"
	updateTimeout     = 60
)

func main() {
	if err := run(); err != nil {
		slog.Error("Telegram bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}
	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.Parse()

	appConfig, err := pkgconfig.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	_, closer, err := logging.SetupLogger(&appConfig.Logging, "telegram-bot")
	if err != nil {
		slog.Warn("Failed to setup logging, continuing with default logger", "error", err)
	} else {
		defer closer.Close()
	}

	tg := appConfig.Telegram
	if tg.BotToken == "" {
		return fmt.Errorf("telegram bot token is required (telegram.bot_token or TELEGRAM_BOT_TOKEN)")
	}

	bot, err := tgbotapi.NewBotAPI(tg.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}
	bot.Debug = false
	slog.Info("Authorized on account", "username", bot.Self.UserName, "oddsline_url", tg.OddslineURL)

	h := &handler{
		api:     newAPIClient(tg.OddslineURL),
		allowed: allowedSet(tg.AllowedUsers),
		send: func(c tgbotapi.Chattable) {
			if _, err := bot.Send(c); err != nil {
				slog.Warn("Failed to send message", "error", err)
			}
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = updateTimeout
	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			slog.Info("Telegram bot stopped")
			return nil
		case update := <-updates:
			if update.Message == nil {
				continue
			}
			h.handleMessage(ctx, update.Message)
		}
	}
}

func allowedSet(ids []int64) map[int64]bool {
	if len(ids) == 0 {
		return nil
	}
	m := make(map[int64]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

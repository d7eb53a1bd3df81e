package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/rayprastya/stop-playing/internal/config"
	"github.com/rayprastya/stop-playing/internal/discord"
	"github.com/rayprastya/stop-playing/internal/domain"
	"github.com/rayprastya/stop-playing/internal/domain/service"
	"github.com/rayprastya/stop-playing/internal/logger"
	"github.com/rayprastya/stop-playing/internal/scheduler"
	"github.com/rayprastya/stop-playing/internal/store"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if cfg.BotToken == "" || cfg.GuildID == "" {
		log.Fatal("BOT_TOKEN and GUILD_ID are required")
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	sweepTime, err := domain.ParseTimeOfDay(cfg.FixedSweepTime)
	if err != nil {
		zlog.Fatal("invalid FIXED_SWEEP_TIME", zap.String("value", cfg.FixedSweepTime), zap.Error(err))
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		zlog.Fatal("failed to create session", zap.Error(err))
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildVoiceStates

	client := discord.NewClient(session, cfg.GuildID, cfg.NotifyChannelID)
	scheduleStore := store.New()
	clock := scheduler.UTCClock{}

	services := service.NewInstance(scheduleStore, client, client, clock, zlog, service.SweepConfig{
		UserIDs: cfg.FixedTargetIDs,
		FireAt:  sweepTime,
		Label:   cfg.FixedSweepLabel,
	})

	handler := discord.NewHandler(services.Disconnect, zlog)
	session.AddHandler(handler.HandleInteraction)

	if err := session.Open(); err != nil {
		zlog.Fatal("failed to open gateway connection", zap.Error(err))
	}
	defer session.Close()

	if err := client.RegisterCommands(); err != nil {
		zlog.Fatal("failed to register slash commands", zap.Error(err))
	}

	sched := scheduler.New(clock, zlog, services.Disconnect, services.Sweep)
	sched.Start()
	defer sched.Stop()

	zlog.Info("bot is running", zap.String("guild_id", cfg.GuildID))

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	zlog.Info("shutting down")
}

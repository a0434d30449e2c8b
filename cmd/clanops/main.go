package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/redis/go-redis/v9"

	"clanops/internal/adapters/discord"
	"clanops/internal/adapters/rest"
	"clanops/internal/adapters/scheduler"
	"clanops/internal/application"
	"clanops/internal/common/clock"
	"clanops/internal/common/uuid"
	"clanops/internal/config"
	"clanops/internal/infrastructure/calendar"
	"clanops/internal/infrastructure/database"
	"clanops/internal/infrastructure/i18n"
	"clanops/internal/infrastructure/redisstore"
	"clanops/internal/ports/output"
	"clanops/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration: %v", err)
	}
	if err := tz.Load(cfg.DisplayTimezone); err != nil {
		log.Fatalf("❌ Timezone: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Database initialisation failed: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Migrations failed: %v", err)
	}

	var eventRepo output.EventRepository
	switch cfg.EventStore {
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		defer client.Close()
		store, err := redisstore.NewEventRepository(ctx, client)
		if err != nil {
			log.Fatalf("❌ Redis initialisation failed: %v", err)
		}
		eventRepo = store
		log.Printf("✅ Events stored in Redis (%s)", cfg.RedisAddr)
	default:
		eventRepo = database.NewEventRepository(pool)
	}
	userRepo := database.NewUserRepository(pool)
	snapshotRepo := database.NewSnapshotRepository(pool)

	clk := &clock.DefaultClock{}
	ids := uuid.New()
	translator := i18n.NewTranslator(cfg.DefaultLocale)
	locks := application.NewEventLocks()

	var session *discordgo.Session
	var cal output.Calendar = calendar.NewLogCalendar(ids)
	if cfg.DiscordEnabled() {
		session, err = discord.NewSession(cfg.Token)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		cal = calendar.NewDiscordCalendar(session, cfg.GuildID)
	}

	eventService := application.NewEventService(application.EventServiceConfig{
		EventRepo:  eventRepo,
		Calendar:   cal,
		Translator: translator,
		Clock:      clk,
		UUID:       ids,
		Locks:      locks,
		Calendars:  cfg.Calendars.ByKey(),
		BaseURL:    cfg.BaseURL,
	})
	signUpService := application.NewSignUpService(eventRepo, userRepo, translator, clk, locks)
	attendanceService := application.NewAttendanceService(eventRepo, userRepo, snapshotRepo, clk, locks)
	userService := application.NewUserService(userRepo)

	if session != nil {
		handler := discord.NewHandler(eventService, signUpService, attendanceService, userService, translator, clk, cfg.AnnounceChannelID)
		bot := discord.NewBot(session, cfg.GuildID, handler)
		if err := bot.Start(); err != nil {
			log.Fatalf("❌ Bot start failed: %v", err)
		}
		defer bot.Stop()
	} else {
		log.Println("⚠️ TOKEN not set, Discord bot disabled")
	}

	go scheduler.New(attendanceService, clk, cfg.SchedulerInterval).Run(ctx)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      rest.NewHandler(eventService, signUpService, attendanceService, translator, clk).Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		log.Printf("✅ HTTP API listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ HTTP server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ HTTP shutdown: %v", err)
	}
}

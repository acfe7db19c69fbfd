package routes

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/whatsclone/whatsclone/internal/config"
	"github.com/whatsclone/whatsclone/internal/middleware"
	"github.com/whatsclone/whatsclone/internal/notification"
	"github.com/whatsclone/whatsclone/internal/onboarding"
	"github.com/whatsclone/whatsclone/internal/permission"
	"github.com/whatsclone/whatsclone/internal/points"
	"github.com/whatsclone/whatsclone/internal/preferences"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg         config.Config
	DB          *pgxpool.Pool
	Cache       *redis.Client
	Preferences preferences.Store
	Logger      *slog.Logger

	// Optional overrides; built from Cfg when nil.
	Notifier notification.Notifier
	Platform permission.Platform
	IntN     onboarding.IntN
}

// Setup configures middlewares and all application routes, then opens the
// login screen.
func Setup(app *fiber.App, d Deps) error {
	if d.Preferences == nil {
		return fmt.Errorf("preference store is required")
	}
	if d.Logger == nil {
		return fmt.Errorf("logger is required")
	}
	if !d.Cfg.IsDevelopment() && d.DB == nil {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	// Login and validator screens
	notifier := d.Notifier
	if notifier == nil {
		notifier = buildNotifier(d.Cfg, d.Logger)
	}
	dispatcher := notification.NewDispatcher(notifier, d.Logger)

	platform := d.Platform
	if platform == nil {
		platform = permission.NewStaticPlatform(d.Cfg.GrantedCapabilities)
	}
	nav := onboarding.NewNavigator()
	gate := permission.NewGate(platform, d.Logger, func() { nav.Finish(onboarding.ScreenLogin) })
	flow := onboarding.NewFlow(d.Preferences, dispatcher, gate, nav, d.Logger, onboarding.Options{
		AwaitPermissions: d.Cfg.AwaitPermissions,
		IntN:             d.IntN,
	})

	// Main screen
	var pointsRepo points.Repository
	if d.DB != nil {
		pgRepo := points.NewPostgresRepository(d.DB)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			return err
		}
		pointsRepo = pgRepo
	} else {
		pointsRepo = points.NewMemoryRepository()
	}
	pointsSvc := points.NewService(pointsRepo, d.Logger)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.RequestIDFrom(c),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterOnboardingRoutes(api, onboarding.NewHandler(flow, gate), middleware.RegisterRateLimit(d.Cache, d.Cfg.RegisterRateLimit))
	RegisterPointsRoutes(api, points.NewHandler(pointsSvc))

	flow.OpenLogin(context.Background())
	return nil
}

func buildNotifier(cfg config.Config, log *slog.Logger) notification.Notifier {
	if cfg.SMSProvider == config.SMSProviderTwilio && cfg.Twilio.Configured() {
		return notification.NewTwilioNotifier(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.PhoneNumber, cfg.Twilio.BaseURL, log)
	}
	return notification.NewLoggerNotifier(log)
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"chat-assistant/config"
	_ "chat-assistant/docs" // Swagger docs
	"chat-assistant/internal/httpserver"
	"chat-assistant/internal/interaction"
	interpreterUC "chat-assistant/internal/interpreter/usecase"
	"chat-assistant/internal/model"
	"chat-assistant/pkg/datemath"
	"chat-assistant/pkg/gcalendar"
	"chat-assistant/pkg/llmprovider"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/ratelimit"
	"chat-assistant/pkg/sqldb"
	"chat-assistant/pkg/telemetry"
)

// @title       Chat Assistant API
// @description Quota-gated AI interaction pipeline: free text in, reviewable actions out.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.ValidateLLM(); err != nil {
		fmt.Println("Invalid LLM config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Chat Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Storage
	db, err := sqldb.Open(ctx, sqldb.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready (%s)", db.Dialect())

	// 4. Date math in the quota timezone
	dateMath, err := datemath.NewParser(cfg.Quota.Timezone)
	if err != nil {
		return fmt.Errorf("quota timezone: %w", err)
	}

	// 5. LLM providers and interpreter
	providers, err := llmprovider.InitializeProviders(ctx, cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("initialize LLM providers: %w", err)
	}
	managerCfg, err := llmprovider.ManagerConfig(cfg.LLM)
	if err != nil {
		return fmt.Errorf("LLM manager config: %w", err)
	}
	manager := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM providers: %v", manager.Providers())

	interp, err := interpreterUC.New(logger, manager, dateMath)
	if err != nil {
		return fmt.Errorf("interpreter: %w", err)
	}

	// 6. Google Calendar (optional)
	var calendar gcalendar.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 7. Metrics
	metrics, err := telemetry.NewGlobalMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Retry: sqldb.RetryConfig{
			Attempts: cfg.Database.RetryAttempts,
			Delay:    cfg.Database.RetryDelay,
		},
		DateMath:    dateMath,
		Interpreter: interp,
		Metrics:     metrics,
		SubmitLimiter: ratelimit.New(ratelimit.Config{
			RequestsPerMin: cfg.RateLimit.SubmitPerMin,
			Burst:          cfg.RateLimit.Burst,
		}),
		DailyLimit:        cfg.Quota.DailyLimit,
		InterpretTimeout:  cfg.Interaction.InterpretTimeout,
		AutoApprove:       autoApprovePolicy(cfg.Interaction.AutoApprove),
		NotificationCache: cfg.Notification.CacheSize,
		Calendar:          calendar,
		CalendarID:        cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 9. Run
	return httpServer.Run(ctx)
}

func autoApprovePolicy(cfg config.AutoApproveConfig) interaction.AutoApprovePolicy {
	kinds := make([]model.ActionKind, 0, len(cfg.Kinds))
	for _, k := range cfg.Kinds {
		kinds = append(kinds, model.ActionKind(k))
	}
	return interaction.AutoApprovePolicy{
		Enabled:       cfg.Enabled,
		Kinds:         kinds,
		MaxActions:    cfg.MaxActions,
		MinConfidence: cfg.MinConfidence,
	}
}

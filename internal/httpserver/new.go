package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chat-assistant/internal/interaction"
	"chat-assistant/internal/interpreter"
	"chat-assistant/pkg/datemath"
	"chat-assistant/pkg/gcalendar"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/ratelimit"
	"chat-assistant/pkg/sqldb"
	"chat-assistant/pkg/telemetry"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Storage
	db    *sqldb.DB
	retry sqldb.RetryConfig

	// Interaction pipeline
	dateMath          *datemath.Parser
	interpreter       interpreter.Interpreter
	metrics           *telemetry.Metrics
	submitLimiter     *ratelimit.Limiter
	dailyLimit        int
	interpretTimeout  time.Duration
	autoApprove       interaction.AutoApprovePolicy
	notificationCache int

	// Integrations
	calendar   gcalendar.Calendar
	calendarID string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Storage
	DB    *sqldb.DB
	Retry sqldb.RetryConfig

	// Interaction pipeline
	DateMath          *datemath.Parser
	Interpreter       interpreter.Interpreter
	Metrics           *telemetry.Metrics
	SubmitLimiter     *ratelimit.Limiter
	DailyLimit        int
	InterpretTimeout  time.Duration
	AutoApprove       interaction.AutoApprovePolicy
	NotificationCache int

	// Integrations (optional)
	Calendar   gcalendar.Calendar
	CalendarID string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		db:                cfg.DB,
		retry:             cfg.Retry,
		dateMath:          cfg.DateMath,
		interpreter:       cfg.Interpreter,
		metrics:           cfg.Metrics,
		submitLimiter:     cfg.SubmitLimiter,
		dailyLimit:        cfg.DailyLimit,
		interpretTimeout:  cfg.InterpretTimeout,
		autoApprove:       cfg.AutoApprove,
		notificationCache: cfg.NotificationCache,
		calendar:          cfg.Calendar,
		calendarID:        cfg.CalendarID,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.dateMath == nil {
		return errors.New("date math parser is required")
	}
	if srv.interpreter == nil {
		return errors.New("interpreter is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		srv.l.Info(ctx, "Shutting down HTTP server...")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

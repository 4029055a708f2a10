package usecase

import (
	"context"
	"time"

	"chat-assistant/internal/interaction"
	"chat-assistant/internal/interaction/repository"
	"chat-assistant/internal/interpreter"
	"chat-assistant/internal/notification"
	"chat-assistant/internal/quota"
	"chat-assistant/internal/workspace"
	pkgLog "chat-assistant/pkg/log"
	"chat-assistant/pkg/sqldb"
	"chat-assistant/pkg/telemetry"
)

const defaultInterpretTimeout = 30 * time.Second

// Config tunes the orchestrator.
type Config struct {
	InterpretTimeout time.Duration
	AutoApprove      interaction.AutoApprovePolicy
}

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	db           *sqldb.DB
	quota        quota.UseCase
	interpreter  interpreter.Interpreter
	workspace    workspace.UseCase
	notification notification.UseCase
	metrics      *telemetry.Metrics
	cfg          Config
}

// New creates the interaction orchestrator. db scopes the approval transaction; every
// repository behind workspace and notification must share it.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	db *sqldb.DB,
	quotaUC quota.UseCase,
	interp interpreter.Interpreter,
	workspaceUC workspace.UseCase,
	notificationUC notification.UseCase,
	metrics *telemetry.Metrics,
	cfg Config,
) *implUseCase {
	if cfg.InterpretTimeout <= 0 {
		cfg.InterpretTimeout = defaultInterpretTimeout
	}
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	return &implUseCase{
		l:            l,
		repo:         repo,
		db:           db,
		quota:        quotaUC,
		interpreter:  interp,
		workspace:    workspaceUC,
		notification: notificationUC,
		metrics:      metrics,
		cfg:          cfg,
	}
}

func (uc *implUseCase) withTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return sqldb.WithTx(ctx, uc.db, fn)
}

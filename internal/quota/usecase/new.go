package usecase

import (
	"time"

	"chat-assistant/internal/quota/repository"
	"chat-assistant/pkg/datemath"
	pkgLog "chat-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	dateMath   *datemath.Parser
	dailyLimit int
	now        func() time.Time
}

// New creates a quota UseCase. Calendar days are resolved in dateMath's timezone.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	dailyLimit int,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		dateMath:   dateMath,
		dailyLimit: dailyLimit,
		now:        time.Now,
	}
}

package usecase

import (
	"time"

	"chat-assistant/internal/workspace/repository"
	"chat-assistant/pkg/datemath"
	"chat-assistant/pkg/gcalendar"
	pkgLog "chat-assistant/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	dateMath   *datemath.Parser
	calendar   gcalendar.Calendar
	calendarID string
	now        func() time.Time
}

// New creates a workspace UseCase. calendar may be nil, which disables reminder mirroring.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	dateMath *datemath.Parser,
	calendar gcalendar.Calendar,
	calendarID string,
) *implUseCase {
	return &implUseCase{
		l:          l,
		repo:       repo,
		dateMath:   dateMath,
		calendar:   calendar,
		calendarID: calendarID,
		now:        time.Now,
	}
}

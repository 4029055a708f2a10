package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"chat-assistant/internal/notification/repository"
	pkgLog "chat-assistant/pkg/log"
)

const defaultSeenCacheSize = 4096

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	// seen remembers entities whose notification is known to be committed.
	seen *lru.Cache[string, struct{}]
}

// New creates a notification UseCase. cacheSize <= 0 uses a default.
func New(l pkgLog.Logger, repo repository.Repository, cacheSize int) *implUseCase {
	if cacheSize <= 0 {
		cacheSize = defaultSeenCacheSize
	}
	seen, err := lru.New[string, struct{}](cacheSize)
	if err != nil {
		panic(err)
	}
	return &implUseCase{
		l:    l,
		repo: repo,
		seen: seen,
	}
}

package postgre

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	repo "chat-assistant/internal/notification/repository"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/sqldb"
)

func newTestRepo(t *testing.T) repo.Repository {
	t.Helper()
	db, err := sqldb.Open(context.Background(), sqldb.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop())
}

func TestCreate_DedupsPerEntity(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	var created atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			_, ok, err := r.Create(gctx, repo.CreateOptions{UserID: "u1", EntityType: "interaction", EntityID: "i1", Message: "applied"})
			if ok {
				created.Add(1)
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), created.Load())

	exists, err := r.ExistsForEntity(ctx, "interaction", "i1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = r.ExistsForEntity(ctx, "interaction", "i2")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListCountAndMarkRead(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	n1, ok, err := r.Create(ctx, repo.CreateOptions{UserID: "u1", EntityType: "interaction", EntityID: "i1", Message: "a"})
	require.NoError(t, err)
	require.True(t, ok)
	_, _, err = r.Create(ctx, repo.CreateOptions{UserID: "u1", EntityType: "interaction", EntityID: "i2", Message: "b"})
	require.NoError(t, err)
	_, _, err = r.Create(ctx, repo.CreateOptions{UserID: "u2", EntityType: "interaction", EntityID: "i3", Message: "c"})
	require.NoError(t, err)

	count, err := r.CountUnread(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	ok, err = r.MarkRead(ctx, repo.MarkReadOptions{ID: n1.ID, UserID: "u2"})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.MarkRead(ctx, repo.MarkReadOptions{ID: n1.ID, UserID: "u1"})
	require.NoError(t, err)
	assert.True(t, ok)

	unread, err := r.List(ctx, repo.ListOptions{UserID: "u1", UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "i2", unread[0].EntityID)

	all, err := r.List(ctx, repo.ListOptions{UserID: "u1", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	got, err := r.GetOne(ctx, n1.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	missing, err := r.GetOne(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

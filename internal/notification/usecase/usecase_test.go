package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-assistant/internal/model"
	"chat-assistant/internal/notification"
	"chat-assistant/internal/notification/repository/postgre"
	"chat-assistant/pkg/log"
	"chat-assistant/pkg/sqldb"
)

func newTestUseCase(t *testing.T) (*implUseCase, *sqldb.DB) {
	t.Helper()
	db, err := sqldb.Open(context.Background(), sqldb.Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(log.NewNop(), postgre.New(db, log.NewNop()), 16), db
}

func TestRecord_OncePerEntity(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	in := notification.RecordInput{EntityType: "interaction", EntityID: "i1", Message: "applied 2 actions"}

	out, err := uc.Record(ctx, sc, in)
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.NotEmpty(t, out.Notification.ID)

	out, err = uc.Record(ctx, sc, in)
	require.NoError(t, err)
	assert.False(t, out.Created)

	list, err := uc.List(ctx, sc, notification.ListInput{})
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 1)
	assert.Equal(t, defaultListLimit, list.Limit)
}

func TestRecord_RolledBackTxIsNotCached(t *testing.T) {
	uc, db := newTestUseCase(t)
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	in := notification.RecordInput{EntityType: "interaction", EntityID: "i1", Message: "applied"}

	boom := errors.New("boom")
	err := sqldb.WithTx(ctx, db, func(ctx context.Context) error {
		out, err := uc.Record(ctx, sc, in)
		require.NoError(t, err)
		require.True(t, out.Created)
		return boom
	})
	require.ErrorIs(t, err, boom)

	in.Message = "failed"
	out, err := uc.Record(ctx, sc, in)
	require.NoError(t, err)
	assert.True(t, out.Created)
	assert.Equal(t, "failed", out.Notification.Message)
}

func TestMarkRead_Classifies(t *testing.T) {
	uc, _ := newTestUseCase(t)
	ctx := context.Background()
	owner := model.Scope{UserID: "u1"}

	out, err := uc.Record(ctx, owner, notification.RecordInput{EntityType: "interaction", EntityID: "i1", Message: "m"})
	require.NoError(t, err)
	id := out.Notification.ID

	assert.ErrorIs(t, uc.MarkRead(ctx, model.Scope{UserID: "u2"}, id), notification.ErrForbidden)
	assert.ErrorIs(t, uc.MarkRead(ctx, owner, "missing"), notification.ErrNotificationNotFound)

	n, err := uc.CountUnread(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, uc.MarkRead(ctx, owner, id))
	n, err = uc.CountUnread(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	unread, err := uc.List(ctx, owner, notification.ListInput{UnreadOnly: true, Limit: 1000})
	require.NoError(t, err)
	assert.Empty(t, unread.Notifications)
	assert.Equal(t, maxListLimit, unread.Limit)
}

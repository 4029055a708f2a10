package postgre

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"chat-assistant/internal/quota"
	repo "chat-assistant/internal/quota/repository"
	"chat-assistant/pkg/datemath"
	"chat-assistant/pkg/sqldb"
)

// FindOrCreate returns the (user, day) counter, inserting it at zero when absent.
// Concurrent creators converge on the single row guarded by UNIQUE(user_id, usage_date);
// callers in this process asking for the same key share one round trip.
// The shared round trip ignores the starting caller's cancellation; each caller
// still stops waiting when its own ctx is done.
func (r *implRepository) FindOrCreate(ctx context.Context, opt repo.FindOrCreateOptions) (quota.Usage, error) {
	day := datemath.DayKey(opt.Date)
	if sqldb.InTx(ctx) {
		return r.findOrCreate(ctx, opt.UserID, day)
	}

	flight := context.WithoutCancel(ctx)
	ch := r.sf.DoChan(opt.UserID+"|"+day, func() (any, error) {
		return r.findOrCreate(flight, opt.UserID, day)
	})

	select {
	case <-ctx.Done():
		return quota.Usage{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return quota.Usage{}, res.Err
		}
		return res.Val.(quota.Usage), nil
	}
}

func (r *implRepository) findOrCreate(ctx context.Context, userID, day string) (quota.Usage, error) {
	insert := r.db.Rebind(`
		INSERT INTO ai_quota_usages (id, user_id, usage_date, request_count, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?)
		ON CONFLICT (user_id, usage_date) DO NOTHING`)

	now := r.now()
	err := sqldb.Retry(ctx, r.retry, func() error {
		_, err := r.db.Conn(ctx).ExecContext(ctx, insert, uuid.NewString(), userID, day, now, now)
		return err
	})
	if err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("FindOrCreate"), err)
		return quota.Usage{}, r.storageErr(err, repo.ErrFailedToInsert)
	}

	usage, err := r.getOne(ctx, userID, day)
	if err != nil {
		r.l.Errorf(ctx, "%s select: %v", r.dsn("FindOrCreate"), err)
		return quota.Usage{}, repo.ErrFailedToGet
	}
	return usage, nil
}

// IncrementRequestCount adds one to the counter in a single statement.
// Returns a zero-value Usage when opt.Ceiling > 0 and the counter is already at the ceiling.
func (r *implRepository) IncrementRequestCount(ctx context.Context, opt repo.IncrementOptions) (quota.Usage, error) {
	query, extra := r.buildIncrementQuery(opt.Ceiling)
	now := r.now()
	args := append([]any{uuid.NewString(), opt.UserID, datemath.DayKey(opt.Date), now, now}, extra...)

	var usage quota.Usage
	err := sqldb.Retry(ctx, r.retry, func() error {
		var err error
		usage, err = scanUsage(r.db.Conn(ctx).QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return quota.Usage{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("IncrementRequestCount"), err)
		return quota.Usage{}, r.storageErr(err, repo.ErrFailedToUpdate)
	}
	return usage, nil
}

// DecrementRequestCount takes one from the counter. Returns a zero-value Usage when the
// counter does not exist or is already zero.
func (r *implRepository) DecrementRequestCount(ctx context.Context, opt repo.DecrementOptions) (quota.Usage, error) {
	query := r.db.Rebind(`
		UPDATE ai_quota_usages
		SET request_count = request_count - 1, updated_at = ?
		WHERE user_id = ? AND usage_date = ? AND request_count > 0
		RETURNING ` + usageColumns)

	var usage quota.Usage
	err := sqldb.Retry(ctx, r.retry, func() error {
		var err error
		usage, err = scanUsage(r.db.Conn(ctx).QueryRowContext(ctx, query, r.now(), opt.UserID, datemath.DayKey(opt.Date)))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return quota.Usage{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DecrementRequestCount"), err)
		return quota.Usage{}, r.storageErr(err, repo.ErrFailedToUpdate)
	}
	return usage, nil
}

// FindByUserIDAndDate returns the counter for one day, or a zero value when absent.
func (r *implRepository) FindByUserIDAndDate(ctx context.Context, opt repo.GetOneOptions) (quota.Usage, error) {
	usage, err := r.getOne(ctx, opt.UserID, datemath.DayKey(opt.Date))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindByUserIDAndDate"), err)
		return quota.Usage{}, repo.ErrFailedToGet
	}
	return usage, nil
}

// FindByUserID lists a user's counters, newest day first.
func (r *implRepository) FindByUserID(ctx context.Context, opt repo.ListOptions) ([]quota.Usage, error) {
	query := `SELECT ` + usageColumns + ` FROM ai_quota_usages WHERE user_id = ? ORDER BY usage_date DESC`
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opt.Limit)
	}

	rows, err := r.db.Conn(ctx).QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindByUserID"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var usages []quota.Usage
	for rows.Next() {
		usage, err := scanUsage(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("FindByUserID"), err)
			return nil, repo.ErrFailedToList
		}
		usages = append(usages, usage)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("FindByUserID"), err)
		return nil, repo.ErrFailedToList
	}
	return usages, nil
}

func (r *implRepository) getOne(ctx context.Context, userID, day string) (quota.Usage, error) {
	query := r.db.Rebind(`SELECT ` + usageColumns + ` FROM ai_quota_usages WHERE user_id = ? AND usage_date = ? LIMIT 1`)
	usage, err := scanUsage(r.db.Conn(ctx).QueryRowContext(ctx, query, userID, day))
	if errors.Is(err, sql.ErrNoRows) {
		return quota.Usage{}, nil
	}
	return usage, err
}

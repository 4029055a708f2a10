package postgre

import (
	"fmt"

	"chat-assistant/internal/quota"
	"chat-assistant/pkg/datemath"
)

const usageColumns = `id, user_id, usage_date, request_count, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUsage(s rowScanner) (quota.Usage, error) {
	var (
		u   quota.Usage
		day string
	)
	if err := s.Scan(&u.ID, &u.UserID, &day, &u.RequestCount, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return quota.Usage{}, err
	}
	date, err := datemath.ParseDayKey(day)
	if err != nil {
		return quota.Usage{}, err
	}
	u.UsageDate = date
	return u, nil
}

// buildIncrementQuery returns the upsert that adds one to a counter, creating it at 1.
// With a positive ceiling the update branch only fires below the ceiling, so a full
// counter yields no row.
func (r *implRepository) buildIncrementQuery(ceiling int) (string, []any) {
	query := `
		INSERT INTO ai_quota_usages (id, user_id, usage_date, request_count, created_at, updated_at)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT (user_id, usage_date) DO UPDATE
		SET request_count = ai_quota_usages.request_count + 1, updated_at = excluded.updated_at`
	var args []any
	if ceiling > 0 {
		query += `
		WHERE ai_quota_usages.request_count < ?`
		args = append(args, ceiling)
	}
	query += fmt.Sprintf(`
		RETURNING %s`, usageColumns)
	return r.db.Rebind(query), args
}

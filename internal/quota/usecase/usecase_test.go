package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"chat-assistant/internal/model"
	"chat-assistant/internal/quota"
	"chat-assistant/internal/quota/repository"
	"chat-assistant/internal/quota/usecase"
	"chat-assistant/pkg/datemath"
	"chat-assistant/pkg/log"
)

// mockRepo keeps counters in memory with the same ceiling semantics as the SQL upsert.
type mockRepo struct {
	mu     sync.Mutex
	rows   map[string]*quota.Usage
	fail   bool
	nextID int
}

func newMockRepo() *mockRepo {
	return &mockRepo{rows: map[string]*quota.Usage{}}
}

func key(userID string, date time.Time) string {
	return userID + "|" + datemath.DayKey(date)
}

func (m *mockRepo) row(userID string, date time.Time) *quota.Usage {
	k := key(userID, date)
	if u, ok := m.rows[k]; ok {
		return u
	}
	m.nextID++
	u := &quota.Usage{ID: fmt.Sprintf("q%d", m.nextID), UserID: userID, UsageDate: date}
	m.rows[k] = u
	return u
}

func (m *mockRepo) FindOrCreate(ctx context.Context, opt repository.FindOrCreateOptions) (quota.Usage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return quota.Usage{}, errors.New("db error")
	}
	return *m.row(opt.UserID, opt.Date), nil
}

func (m *mockRepo) IncrementRequestCount(ctx context.Context, opt repository.IncrementOptions) (quota.Usage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return quota.Usage{}, errors.New("db error")
	}
	u := m.row(opt.UserID, opt.Date)
	if opt.Ceiling > 0 && u.RequestCount >= opt.Ceiling {
		return quota.Usage{}, nil
	}
	u.RequestCount++
	return *u, nil
}

func (m *mockRepo) DecrementRequestCount(ctx context.Context, opt repository.DecrementOptions) (quota.Usage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.rows[key(opt.UserID, opt.Date)]
	if !ok || u.RequestCount == 0 {
		return quota.Usage{}, nil
	}
	u.RequestCount--
	return *u, nil
}

func (m *mockRepo) FindByUserIDAndDate(ctx context.Context, opt repository.GetOneOptions) (quota.Usage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.rows[key(opt.UserID, opt.Date)]; ok {
		return *u, nil
	}
	return quota.Usage{}, nil
}

func (m *mockRepo) FindByUserID(ctx context.Context, opt repository.ListOptions) ([]quota.Usage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []quota.Usage
	for _, u := range m.rows {
		if u.UserID == opt.UserID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UsageDate.After(out[j].UsageDate) })
	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func newUseCase(t *testing.T, repo repository.Repository, limit int) quota.UseCase {
	t.Helper()
	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	return usecase.New(log.NewNop(), repo, dm, limit)
}

var u1 = model.Scope{UserID: "u1"}

func TestReserve_SixthRequestExceedsLimitOfFive(t *testing.T) {
	repo := newMockRepo()
	uc := newUseCase(t, repo, 5)
	ctx := context.Background()

	for want := 1; want <= 5; want++ {
		if _, err := uc.Check(ctx, u1); err != nil {
			t.Fatalf("Check #%d: unexpected error %v", want, err)
		}
		res, err := uc.Reserve(ctx, u1)
		if err != nil {
			t.Fatalf("Reserve #%d: unexpected error %v", want, err)
		}
		if res.Count != want {
			t.Errorf("Reserve #%d: count = %d", want, res.Count)
		}
	}

	if _, err := uc.Check(ctx, u1); !errors.Is(err, quota.ErrQuotaExceeded) {
		t.Errorf("Check #6: expected ErrQuotaExceeded, got %v", err)
	}
	if _, err := uc.Reserve(ctx, u1); !errors.Is(err, quota.ErrQuotaExceeded) {
		t.Errorf("Reserve #6: expected ErrQuotaExceeded, got %v", err)
	}

	out, err := uc.Usage(ctx, u1)
	if err != nil {
		t.Fatal(err)
	}
	if out.Used != 5 || out.Remaining != 0 || out.Limit != 5 {
		t.Errorf("Usage = %+v", out)
	}
}

func TestReserve_ConcurrentGrantsAtMostLimit(t *testing.T) {
	repo := newMockRepo()
	uc := newUseCase(t, repo, 3)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.Reserve(ctx, u1); err == nil {
				mu.Lock()
				granted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if granted != 3 {
		t.Errorf("granted = %d, want 3", granted)
	}
}

func TestReserve_ZeroLimit(t *testing.T) {
	uc := newUseCase(t, newMockRepo(), 0)
	if _, err := uc.Reserve(context.Background(), u1); !errors.Is(err, quota.ErrQuotaExceeded) {
		t.Errorf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestRefund_ReturnsSlot(t *testing.T) {
	repo := newMockRepo()
	uc := newUseCase(t, repo, 1)
	ctx := context.Background()

	res, err := uc.Reserve(ctx, u1)
	if err != nil {
		t.Fatal(err)
	}
	if err := uc.Refund(ctx, u1, res.Date); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Check(ctx, u1); err != nil {
		t.Errorf("Check after refund: %v", err)
	}
	// Refunding an empty counter is a no-op.
	if err := uc.Refund(ctx, u1, res.Date); err != nil {
		t.Errorf("second refund: %v", err)
	}
}

func TestCheck_RepositoryError(t *testing.T) {
	repo := newMockRepo()
	repo.fail = true
	uc := newUseCase(t, repo, 5)

	_, err := uc.Check(context.Background(), u1)
	if err == nil || errors.Is(err, quota.ErrQuotaExceeded) {
		t.Errorf("expected repository error, got %v", err)
	}
}

func TestHistory_DefaultsLimit(t *testing.T) {
	repo := newMockRepo()
	uc := newUseCase(t, repo, 5)
	ctx := context.Background()

	if _, err := uc.Reserve(ctx, u1); err != nil {
		t.Fatal(err)
	}
	out, err := uc.History(ctx, u1, quota.HistoryInput{})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Usages) != 1 || out.Usages[0].RequestCount != 1 {
		t.Errorf("History = %+v", out)
	}
	if out.Limit != 30 || out.DailyLimit != 5 {
		t.Errorf("Limit = %d, DailyLimit = %d, want 30 and 5", out.Limit, out.DailyLimit)
	}

	other, err := uc.History(ctx, model.Scope{UserID: "u2"}, quota.HistoryInput{Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if len(other.Usages) != 0 {
		t.Errorf("u2 history should be empty, got %d", len(other.Usages))
	}
	if other.Limit != 10 {
		t.Errorf("Limit = %d, want 10", other.Limit)
	}

	capped, err := uc.History(ctx, u1, quota.HistoryInput{Limit: 1000})
	if err != nil {
		t.Fatal(err)
	}
	if capped.Limit != 366 {
		t.Errorf("Limit = %d, want 366", capped.Limit)
	}
}

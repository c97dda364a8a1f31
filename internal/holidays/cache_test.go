package holidays

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benvon/smart-calendar/internal/models"
	"go.uber.org/zap"
)

type fakeProvider struct {
	calls    atomic.Int32
	holidays []models.PublicHoliday
	err      error
}

func (f *fakeProvider) PublicHolidays(ctx context.Context, year int) ([]models.PublicHoliday, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.holidays, nil
}

type failingCache struct{}

func (failingCache) Get(context.Context, int) ([]models.PublicHoliday, bool, error) {
	return nil, false, errors.New("cache down")
}

func (failingCache) Set(context.Context, int, []models.PublicHoliday) error {
	return errors.New("cache down")
}

func TestMemoryCache_Expiry(t *testing.T) {
	t.Parallel()
	c := NewMemoryCache(time.Hour)
	now := time.Date(2024, time.June, 5, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	ctx := context.Background()
	if _, ok, _ := c.Get(ctx, 2024); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	_ = c.Set(ctx, 2024, []models.PublicHoliday{{Date: "2024-07-04", Name: "Independence Day", Global: true}})

	got, ok, err := c.Get(ctx, 2024)
	if err != nil || !ok || len(got) != 1 {
		t.Fatalf("Get() = %v, %v, %v", got, ok, err)
	}

	now = now.Add(2 * time.Hour)
	if _, ok, _ := c.Get(ctx, 2024); ok {
		t.Error("expected miss after ttl")
	}
}

func TestCachedProvider_UsesCache(t *testing.T) {
	t.Parallel()
	next := &fakeProvider{holidays: []models.PublicHoliday{{Date: "2024-07-04", Name: "Independence Day", Global: true}}}
	p := NewCachedProvider(next, NewMemoryCache(time.Hour), zap.NewNop())

	for i := 0; i < 3; i++ {
		got, err := p.PublicHolidays(context.Background(), 2024)
		if err != nil || len(got) != 1 {
			t.Fatalf("PublicHolidays() = %v, %v", got, err)
		}
	}
	if n := next.calls.Load(); n != 1 {
		t.Errorf("provider calls = %d, want 1", n)
	}

	_, _ = p.PublicHolidays(context.Background(), 2025)
	if n := next.calls.Load(); n != 2 {
		t.Errorf("provider calls = %d, want 2 after new year", n)
	}
}

func TestCachedProvider_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()
	next := &fakeProvider{err: errors.New("network down")}
	cache := NewMemoryCache(time.Hour)
	p := NewCachedProvider(next, cache, nil)

	if _, err := p.PublicHolidays(context.Background(), 2024); err == nil {
		t.Fatal("expected error")
	}
	if _, ok, _ := cache.Get(context.Background(), 2024); ok {
		t.Error("failed fetch was cached")
	}
}

func TestCachedProvider_CacheFailureFallsThrough(t *testing.T) {
	t.Parallel()
	next := &fakeProvider{holidays: []models.PublicHoliday{{Date: "2024-01-01", Name: "New Year's Day", Global: true}}}
	p := NewCachedProvider(next, failingCache{}, zap.NewNop())

	got, err := p.PublicHolidays(context.Background(), 2024)
	if err != nil || len(got) != 1 {
		t.Fatalf("PublicHolidays() = %v, %v", got, err)
	}
}

func TestNewProvider_MemoryCache(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"date":"2024-07-04","name":"Independence Day","global":true}]`))
	}))
	defer srv.Close()

	p := NewProvider(Options{BaseURL: srv.URL, Country: "us", Timeout: time.Second}, nil)
	for i := 0; i < 3; i++ {
		got, err := p.PublicHolidays(context.Background(), 2024)
		if err != nil {
			t.Fatalf("PublicHolidays() error = %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("PublicHolidays() = %+v", got)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("upstream hits = %d, want 1", n)
	}
}

package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hszk-dev/liveshows/internal/domain/model"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemoryShowListCache_GetSet(t *testing.T) {
	cache := NewMemoryShowListCache(nil)
	ctx := context.Background()

	got, err := cache.Get(ctx, "recorded")
	if err != nil || got != nil {
		t.Fatalf("Get on empty cache = %v, %v; want nil, nil", got, err)
	}

	list := testShowList()
	if err := cache.Set(ctx, "recorded", list, time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err = cache.Get(ctx, "recorded")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != list {
		t.Errorf("Get returned %p, want stored instance %p", got, list)
	}
}

func TestMemoryShowListCache_Expiration(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		wantHit bool
	}{
		{"just written", 0, true},
		{"one second before ttl", 24*time.Hour - time.Second, true},
		{"exactly at ttl", 24 * time.Hour, false},
		{"after ttl", 25 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			cache := NewMemoryShowListCache(clock.Now)
			ctx := context.Background()

			if err := cache.Set(ctx, "recorded", testShowList(), 24*time.Hour); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			clock.Advance(tt.elapsed)

			got, err := cache.Get(ctx, "recorded")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if (got != nil) != tt.wantHit {
				t.Errorf("hit = %v, want %v", got != nil, tt.wantHit)
			}
			if !tt.wantHit && cache.Len() != 0 {
				t.Errorf("Len() = %d, want expired entry evicted", cache.Len())
			}
		})
	}
}

func TestMemoryShowListCache_HitDoesNotExtendTTL(t *testing.T) {
	clock := newFakeClock()
	cache := NewMemoryShowListCache(clock.Now)
	ctx := context.Background()

	if err := cache.Set(ctx, "recorded", testShowList(), 24*time.Hour); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	clock.Advance(23 * time.Hour)
	if got, _ := cache.Get(ctx, "recorded"); got == nil {
		t.Fatal("expected hit at 23h")
	}

	clock.Advance(time.Hour)
	if got, _ := cache.Get(ctx, "recorded"); got != nil {
		t.Error("expected miss at 24h, hit must not extend expiration")
	}
}

func TestMemoryShowListCache_SetReplaces(t *testing.T) {
	cache := NewMemoryShowListCache(nil)
	ctx := context.Background()

	first := &model.ShowList{MoreShowsURL: "first"}
	second := &model.ShowList{MoreShowsURL: "second"}

	_ = cache.Set(ctx, "recorded", first, time.Hour)
	_ = cache.Set(ctx, "recorded", second, time.Hour)

	got, _ := cache.Get(ctx, "recorded")
	if got != second {
		t.Errorf("Get = %v, want second list", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
}

func TestMemoryShowListCache_Delete(t *testing.T) {
	cache := NewMemoryShowListCache(nil)
	ctx := context.Background()

	_ = cache.Set(ctx, "recorded", testShowList(), time.Hour)
	if err := cache.Delete(ctx, "recorded"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got, _ := cache.Get(ctx, "recorded"); got != nil {
		t.Errorf("expected nil after delete, got %v", got)
	}
	if err := cache.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete of missing key failed: %v", err)
	}
}

func TestMemoryShowListCache_ConcurrentAccess(t *testing.T) {
	cache := NewMemoryShowListCache(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = cache.Set(ctx, "recorded", testShowList(), time.Hour)
		}()
		go func() {
			defer wg.Done()
			_, _ = cache.Get(ctx, "recorded")
		}()
	}
	wg.Wait()

	if got, _ := cache.Get(ctx, "recorded"); got == nil {
		t.Error("expected an entry after concurrent writes")
	}
}

package alerts

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterStore_Basic(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	limiter := store.GetLimiter("user1")
	if limiter == nil {
		t.Fatal("expected limiter, got nil")
	}
	if limiter.Limit() != 1 {
		t.Errorf("expected limit 1, got %v", limiter.Limit())
	}
}

func TestRateLimiterStore_CustomLimit(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	store.SetLimiter("user2", 5, 10)
	limiter := store.GetLimiter("user2")

	if limiter.Limit() != 5 {
		t.Errorf("expected limit 5, got %v", limiter.Limit())
	}
	if limiter.Burst() != 10 {
		t.Errorf("expected burst 10, got %v", limiter.Burst())
	}
}

func TestRateLimiterStore_Concurrency(t *testing.T) {
	store := NewRateLimiterStore(10, 5)
	userID := uuid.NewString()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.GetLimiter(userID) == nil {
				t.Error("expected limiter, got nil")
			}
		}()
	}
	wg.Wait()

	if store.GetLimiter(userID) == nil {
		t.Error("expected limiter to exist after concurrent access")
	}
}

func TestRateLimiter_Enforcement(t *testing.T) {
	store := NewRateLimiterStore(2, 2)
	userID := uuid.NewString()

	if !store.Allow(userID) || !store.Allow(userID) {
		t.Fatal("expected first two calls to be allowed")
	}
	if store.Allow(userID) {
		t.Error("expected third call to be rate limited")
	}

	time.Sleep(600 * time.Millisecond)
	if !store.Allow(userID) {
		t.Error("expected one token to be available after refill")
	}
}

func TestRateLimiter_NilStoreAllows(t *testing.T) {
	var store *RateLimiterStore
	assert.True(t, store.Allow("anyone"))
}

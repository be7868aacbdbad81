package rate_limiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow_BurstPerIP(t *testing.T) {
	l := New(0.001, 3)

	for i := range 3 {
		assert.True(t, l.Allow("10.0.0.1"), "request %d should pass", i+1)
	}
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "buckets are per IP")
}

func TestCleanup(t *testing.T) {
	l := New(1, 1)
	l.Allow("10.0.0.1")
	l.Allow("10.0.0.2")

	l.cleanup(time.Hour)
	assert.Equal(t, 2, l.visitorCount())

	l.cleanup(0)
	assert.Equal(t, 0, l.visitorCount())

	l.Allow("10.0.0.3")
	l.CleanupAllVisitors()
	assert.Equal(t, 0, l.visitorCount())
}

func TestStartVisitorCleanupLoop_StopsWithContext(t *testing.T) {
	l := New(1, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		l.StartVisitorCleanupLoop(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}

package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/freightdesk/pkg/lifecycle"
)

type checker struct{ ready atomic.Bool }

func (c *checker) Ready() bool { return c.ready.Load() }

func TestReadiness(t *testing.T) {
	lc := lifecycle.New()
	if lc.Ready() {
		t.Error("should not be ready before WaitForStartup")
	}

	lc.WaitForStartup()
	if !lc.Ready() {
		t.Error("should be ready after WaitForStartup")
	}
}

func TestTrackedCheckerGatesReadiness(t *testing.T) {
	lc := lifecycle.New()
	db := &checker{}
	lc.Track("database", db)
	lc.WaitForStartup()

	if lc.Ready() {
		t.Error("should not be ready while tracked checker is not ready")
	}
	if pending := lc.Pending(); len(pending) != 1 || pending[0] != "database" {
		t.Errorf("pending: got %v, want [database]", pending)
	}

	db.ready.Store(true)
	if !lc.Ready() {
		t.Error("should be ready once tracked checker is ready")
	}
	if pending := lc.Pending(); len(pending) != 0 {
		t.Errorf("pending: got %v, want none", pending)
	}
}

func TestStartupHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			count.Add(1)
		})
	}

	lc.WaitForStartup()

	if got := count.Load(); got != 3 {
		t.Errorf("startup hooks: got %d, want 3", got)
	}
}

func TestShutdown(t *testing.T) {
	t.Run("hooks execute after cancel", func(t *testing.T) {
		lc := lifecycle.New()

		var cleaned atomic.Bool
		lc.OnShutdown(func() {
			<-lc.Context().Done()
			cleaned.Store(true)
		})

		if err := lc.Shutdown(5 * time.Second); err != nil {
			t.Fatalf("shutdown failed: %v", err)
		}
		if !cleaned.Load() {
			t.Error("shutdown hook did not execute")
		}
		select {
		case <-lc.Context().Done():
		default:
			t.Error("context should be cancelled after shutdown")
		}
	})

	t.Run("timeout", func(t *testing.T) {
		lc := lifecycle.New()
		lc.OnShutdown(func() {
			<-lc.Context().Done()
			time.Sleep(500 * time.Millisecond)
		})

		if err := lc.Shutdown(50 * time.Millisecond); err == nil {
			t.Error("expected timeout error, got nil")
		}
	})
}

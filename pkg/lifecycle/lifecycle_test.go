package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/admin-shell/pkg/lifecycle"
)

func TestCoordinator_NotReadyUntilStartup(t *testing.T) {
	lc := lifecycle.New()

	if lc.Ready() {
		t.Fatal("new coordinator reports ready")
	}

	select {
	case <-lc.Context().Done():
		t.Fatal("context cancelled before shutdown")
	default:
	}

	lc.WaitForStartup()
	if !lc.Ready() {
		t.Error("coordinator not ready after WaitForStartup with no hooks")
	}
}

func TestCoordinator_WaitsForEveryStartupHook(t *testing.T) {
	lc := lifecycle.New()

	var done atomic.Int32
	release := make(chan struct{})

	for range 3 {
		lc.OnStartup(func() {
			<-release
			done.Add(1)
		})
	}

	waited := make(chan struct{})
	go func() {
		lc.WaitForStartup()
		close(waited)
	}()

	select {
	case <-waited:
		t.Fatal("WaitForStartup returned before hooks finished")
	case <-time.After(20 * time.Millisecond):
	}

	if lc.Ready() {
		t.Error("ready while hooks are blocked")
	}

	close(release)
	<-waited

	if done.Load() != 3 {
		t.Errorf("hooks completed = %d, want 3", done.Load())
	}
	if !lc.Ready() {
		t.Error("not ready after hooks completed")
	}
}

func TestCoordinator_ShutdownReleasesHooks(t *testing.T) {
	lc := lifecycle.New()

	var closed atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		closed.Store(true)
	})

	if err := lc.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown() = %v", err)
	}
	if !closed.Load() {
		t.Error("shutdown hook did not run to completion")
	}
	if lc.Context().Err() == nil {
		t.Error("context not cancelled after shutdown")
	}
}

func TestCoordinator_ShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	stuck := make(chan struct{})
	t.Cleanup(func() { close(stuck) })

	lc.OnShutdown(func() {
		<-stuck
	})

	start := time.Now()
	err := lc.Shutdown(30 * time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Shutdown took %v, want about 30ms", elapsed)
	}
}

func TestCoordinator_ReadinessChecker(t *testing.T) {
	var checker lifecycle.ReadinessChecker = lifecycle.New()
	if checker.Ready() {
		t.Error("new coordinator satisfies readiness")
	}
}

package server

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownManager_ReverseOrderAndContinuesOnError(t *testing.T) {
	var order []int
	sm := NewShutdownManager()
	sm.Register(func(ctx context.Context) error { order = append(order, 1); return nil })
	sm.Register(func(ctx context.Context) error { order = append(order, 2); return errors.New("close failed") })
	sm.Register(func(ctx context.Context) error { order = append(order, 3); return nil })

	sm.Shutdown(context.Background())

	assert.Equal(t, []int{3, 2, 1}, order)
}

func TestGracefulServer_RunStopsOnCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	gs := NewGracefulServer(e, "127.0.0.1:0", time.Second)
	closed := make(chan struct{})
	gs.OnShutdown(func(ctx context.Context) error {
		close(closed)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	<-closed
}

func TestGracefulServer_LastHookDrainsWorkerFirst(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	gs := NewGracefulServer(e, "127.0.0.1:0", time.Second)

	var mu sync.Mutex
	var events []string
	record := func(ev string) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		record("worker exited")
	}()

	gs.OnShutdown(func(context.Context) error {
		record("store closed")
		return nil
	})
	gs.OnShutdown(func(shutdownCtx context.Context) error {
		select {
		case <-workerDone:
			return nil
		case <-shutdownCtx.Done():
			return shutdownCtx.Err()
		}
	})

	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"worker exited", "store closed"}, events)
}

func TestGracefulServer_RunReportsListenError(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	gs := NewGracefulServer(e, "not-an-address", time.Second)
	err := gs.Run(context.Background())
	assert.Error(t, err)
}

package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStop(t *testing.T) {
	sp := newSpinner(context.Background(), "working")
	sp.Start()
	time.Sleep(10 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		sp.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestSpinnerStopWithError(t *testing.T) {
	sp := newSpinner(context.Background(), "working")
	sp.Start()

	done := make(chan struct{})
	go func() {
		sp.StopWithError("request failed")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("StopWithError did not return")
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sp := newSpinner(ctx, "working")
	sp.Start()
	cancel()

	select {
	case <-sp.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop on context cancellation")
	}
}

package maintenance

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestStartRunsTasksUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var runs, failures atomic.Int32

	done := make(chan struct{})
	go func() {
		Start(ctx, []Task{
			{Name: "refresh", Interval: 10 * time.Millisecond, Run: func(context.Context) error {
				runs.Add(1)
				return nil
			}},
			{Name: "flaky", Interval: 10 * time.Millisecond, Run: func(context.Context) error {
				failures.Add(1)
				return errors.New("boom")
			}},
			{Name: "disabled", Run: func(context.Context) error {
				t.Error("disabled task must not run")
				return nil
			}},
		}, false, discard)
		close(done)
	}()

	require.Eventually(t, func() bool { return runs.Load() >= 2 && failures.Load() >= 2 },
		2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}

func TestStartRunNow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ran := make(chan struct{}, 1)

	go Start(ctx, []Task{{Name: "refresh", Interval: time.Hour, Run: func(context.Context) error {
		ran <- struct{}{}
		return nil
	}}}, true, discard)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run immediately")
	}
	assert.NoError(t, ctx.Err())
}

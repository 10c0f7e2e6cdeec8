package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeSleeper records requested pauses without waiting.
type fakeSleeper struct {
	calls int
	total time.Duration
}

func (f *fakeSleeper) sleep(ctx context.Context, d time.Duration) error {
	f.calls++
	f.total += d
	return ctx.Err()
}

func TestPoll_Success(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func(context.Context) error {
		attempts++
		return nil
	}

	sleeper := &fakeSleeper{}
	err := Poll(context.Background(), operation, WithSleep(sleeper.sleep))

	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt, got: %d", attempts)
	}
	if sleeper.calls != 0 {
		t.Errorf("Expected no pause, got: %d", sleeper.calls)
	}
}

func TestPoll_SuccessAfterFailures(t *testing.T) {
	t.Parallel()
	for _, failures := range []int{1, 5, 179} {
		t.Run(fmt.Sprintf("%d failures", failures), func(t *testing.T) {
			t.Parallel()
			attempts := 0
			operation := func(context.Context) error {
				attempts++
				if attempts <= failures {
					return errors.New("not ready")
				}
				return nil
			}

			sleeper := &fakeSleeper{}
			err := Poll(context.Background(), operation, WithSleep(sleeper.sleep))

			if err != nil {
				t.Errorf("Expected success, got: %v", err)
			}
			if attempts != failures+1 {
				t.Errorf("Expected %d attempts, got: %d", failures+1, attempts)
			}
			if sleeper.calls != failures {
				t.Errorf("Expected %d pauses, got: %d", failures, sleeper.calls)
			}
		})
	}
}

func TestPoll_Exhausted(t *testing.T) {
	t.Parallel()
	attempts := 0
	persistent := errors.New("persistent error")
	operation := func(context.Context) error {
		attempts++
		return persistent
	}

	sleeper := &fakeSleeper{}
	err := Poll(context.Background(), operation, WithSleep(sleeper.sleep))

	if !errors.Is(err, ErrExhausted) {
		t.Fatalf("Expected ErrExhausted, got: %v", err)
	}
	if !errors.Is(err, persistent) {
		t.Errorf("Expected last error to be wrapped, got: %v", err)
	}
	if attempts != 180 {
		t.Errorf("Expected 180 attempts, got: %d", attempts)
	}
	// One pause between each pair of attempts, 10s each.
	if sleeper.total != 179*10*time.Second {
		t.Errorf("Expected %v paused, got: %v", 179*10*time.Second, sleeper.total)
	}
}

func TestPoll_OnAttempt(t *testing.T) {
	t.Parallel()
	type call struct {
		attempt, max int
		failed       bool
	}
	var calls []call

	attempts := 0
	operation := func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("error")
		}
		return nil
	}

	sleeper := &fakeSleeper{}
	err := Poll(context.Background(), operation,
		WithMaxAttempts(5),
		WithSleep(sleeper.sleep),
		WithOnAttempt(func(attempt, maxAttempts int, err error) {
			calls = append(calls, call{attempt, maxAttempts, err != nil})
		}))

	if err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}
	expected := []call{{1, 5, true}, {2, 5, true}, {3, 5, false}}
	if len(calls) != len(expected) {
		t.Fatalf("Expected %d progress calls, got: %d", len(expected), len(calls))
	}
	for i := range expected {
		if calls[i] != expected[i] {
			t.Errorf("Call %d: expected %+v, got %+v", i, expected[i], calls[i])
		}
	}
}

func TestPoll_ContextCancellation(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func(context.Context) error {
		attempts++
		return errors.New("error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Poll(ctx, operation, WithInterval(10*time.Millisecond))

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt before context check, got: %d", attempts)
	}
}

func TestPoll_RealInterval(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("error")
		}
		return nil
	}

	start := time.Now()
	err := Poll(context.Background(), operation, WithInterval(20*time.Millisecond))
	if err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}

	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Expected at least 40ms of pauses, got: %v", elapsed)
	}
}

func TestPoll_FatalError(t *testing.T) {
	t.Parallel()
	attempts := 0
	operation := func(context.Context) error {
		attempts++
		return Fatal(errors.New("fatal error"))
	}

	err := Poll(context.Background(), operation, WithInterval(time.Millisecond))

	if !IsFatal(err) {
		t.Errorf("Expected fatal error, got: %v", err)
	}
	if attempts != 1 {
		t.Errorf("Expected 1 attempt (no retries for fatal error), got: %d", attempts)
	}
}

func TestPoll_InvalidMaxAttempts(t *testing.T) {
	t.Parallel()
	called := false
	err := Poll(context.Background(), func(context.Context) error {
		called = true
		return nil
	}, WithMaxAttempts(0))

	if err == nil {
		t.Error("Expected error for zero attempts")
	}
	if called {
		t.Error("Operation should not run with zero attempts")
	}
}

func TestFatal(t *testing.T) {
	t.Parallel()
	t.Run("Nil error", func(t *testing.T) {
		t.Parallel()
		if err := Fatal(nil); err != nil {
			t.Errorf("Expected nil, got: %v", err)
		}
	})

	t.Run("Non-nil error", func(t *testing.T) {
		t.Parallel()
		originalErr := errors.New("test error")
		err := Fatal(originalErr)

		if !IsFatal(err) {
			t.Error("Expected error to be fatal")
		}
		if err.Error() != originalErr.Error() {
			t.Errorf("Expected error message %q, got %q", originalErr.Error(), err.Error())
		}
	})

	t.Run("errors.Is with fmt.Errorf wrapped fatal", func(t *testing.T) {
		t.Parallel()
		sentinel := errors.New("sentinel error")
		doubleWrapped := fmt.Errorf("context: %w", Fatal(sentinel))

		if !errors.Is(doubleWrapped, sentinel) {
			t.Error("errors.Is should find sentinel through double-wrapped FatalError")
		}
		if !IsFatal(doubleWrapped) {
			t.Error("IsFatal should detect FatalError through fmt.Errorf wrapping")
		}
	})
}

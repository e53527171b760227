package window

import (
	"image"
	"testing"
	"time"
)

type pollCounter struct {
	polls int
	err   error
}

func (w *pollCounter) Show(*image.RGBA) error { return nil }

func (w *pollCounter) Poll() error {
	w.polls++
	return w.err
}

func newTestSynchronizer(wind Window, start time.Time) (*TimeSynchronizer, *time.Time, *[]time.Duration) {
	now := start
	var slept []time.Duration
	ts := NewTimeSynchronizer(wind, 10*time.Millisecond)
	ts.prev = start
	ts.now = func() time.Time { return now }
	ts.sleep = func(d time.Duration) {
		slept = append(slept, d)
		now = now.Add(d)
	}
	return ts, &now, &slept
}

func TestWaitSleepsRemainder(t *testing.T) {
	wind := &pollCounter{}
	ts, now, slept := newTestSynchronizer(wind, time.Unix(0, 0))

	*now = now.Add(3 * time.Millisecond)
	if err := ts.Wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if len(*slept) != 1 || (*slept)[0] != 7*time.Millisecond {
		t.Fatalf("slept %v, expected [7ms]", *slept)
	}
	if wind.polls != 1 {
		t.Fatalf("polls: got %d, expected 1", wind.polls)
	}
}

func TestWaitResyncsWhenLate(t *testing.T) {
	wind := &pollCounter{}
	ts, now, slept := newTestSynchronizer(wind, time.Unix(0, 0))

	*now = now.Add(50 * time.Millisecond)
	ts.Wait()
	*now = now.Add(2 * time.Millisecond)
	ts.Wait()
	if len(*slept) != 1 || (*slept)[0] != 8*time.Millisecond {
		t.Fatalf("slept %v, expected [8ms] after resync", *slept)
	}
}

func TestWaitReturnsPollError(t *testing.T) {
	wind := &pollCounter{err: ErrClosed}
	ts, _, _ := newTestSynchronizer(wind, time.Unix(0, 0))
	if err := ts.Wait(); err != ErrClosed {
		t.Fatalf("wait: got %v, expected ErrClosed", err)
	}
}

package window

import "time"

// TimeSynchronizer paces the tick loop at a fixed interval and polls the
// window at every tick boundary.
type TimeSynchronizer struct {
	prev     time.Time
	interval time.Duration
	wind     Window
	sleep    func(time.Duration)
	now      func() time.Time
}

func NewTimeSynchronizer(wind Window, interval time.Duration) *TimeSynchronizer {
	return &TimeSynchronizer{
		prev:     time.Now(),
		interval: interval,
		wind:     wind,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

func (ts *TimeSynchronizer) Interval() time.Duration {
	return ts.interval
}

// Wait sleeps until the next tick and polls the window. A loop that fell
// behind by more than one tick resynchronizes instead of bursting.
func (ts *TimeSynchronizer) Wait() error {
	cur := ts.now()
	next := ts.prev.Add(ts.interval)
	if diff := next.Sub(cur); diff > 0 {
		ts.sleep(diff)
		ts.prev = next
	} else if -diff > ts.interval {
		ts.prev = cur
	} else {
		ts.prev = next
	}
	if ts.wind == nil {
		return nil
	}
	return ts.wind.Poll()
}

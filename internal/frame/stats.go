package frame

import "time"

// HistoryLen is how many frames Stats keeps.
const HistoryLen = 60

// Stats keeps a rolling window of frame durations.
type Stats struct {
	history []time.Duration
	last    time.Duration
	min     time.Duration
	max     time.Duration
	avg     time.Duration
}

// Add records one frame and recomputes min, max and average over the window.
func (s *Stats) Add(d time.Duration) {
	s.last = d
	if len(s.history) >= HistoryLen {
		s.history = s.history[1:]
	}
	s.history = append(s.history, d)

	var total time.Duration
	s.min, s.max = d, d
	for _, v := range s.history {
		total += v
		s.min = min(s.min, v)
		s.max = max(s.max, v)
	}
	s.avg = total / time.Duration(len(s.history))
}

func (s *Stats) Last() time.Duration { return s.last }
func (s *Stats) Min() time.Duration  { return s.min }
func (s *Stats) Max() time.Duration  { return s.max }
func (s *Stats) Avg() time.Duration  { return s.avg }
func (s *Stats) Len() int            { return len(s.history) }

package frame

import (
	"time"

	"wavespec/internal/config"
)

// IdleFPS caps the frame rate while nothing is being edited.
const IdleFPS = 30

const spinWindow = 200 * time.Microsecond

// FPSLimiter paces frames to config.GetFPSLimit
type FPSLimiter struct {
	next time.Time
}

func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// Wait blocks until the next frame is due. Idle frames use the lower of the
// configured limit and IdleFPS. It sleeps most of the gap and spins the last
// few microseconds.
func (f *FPSLimiter) Wait(idle bool) {
	limit := config.GetFPSLimit()
	if idle && (limit <= 0 || limit > IdleFPS) {
		limit = IdleFPS
	}
	if limit <= 0 {
		f.next = time.Time{}
		return
	}

	target := time.Second / time.Duration(limit)
	if f.next.IsZero() {
		f.next = time.Now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := time.Until(f.next)
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			time.Sleep(remaining - spinWindow)
		}
	}

	// Resync after a hitch instead of racing to catch up.
	if late := -time.Until(f.next); late > target {
		f.next = time.Now().Add(target)
	}
}

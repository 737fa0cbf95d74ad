package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame timing of named passes. Names are "package.Operation".

// Entry is the accumulated time of one name during the current frame.
type Entry struct {
	Name  string
	Total time.Duration
	Calls int
}

var (
	mu      sync.Mutex
	entries = make(map[string]*Entry)
)

// Track starts timing name and returns the function that stops it.
//
//	defer profiling.Track("waves.Update")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		e, ok := entries[name]
		if !ok {
			e = &Entry{Name: name}
			entries[name] = e
		}
		e.Total += d
		e.Calls++
		mu.Unlock()
	}
}

// ResetFrame drops everything recorded so far. Call once at the top of a frame.
func ResetFrame() {
	mu.Lock()
	clear(entries)
	mu.Unlock()
}

// Snapshot copies the current frame totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(entries))
	for k, e := range entries {
		out[k] = e.Total
	}
	return out
}

// Entries returns the current frame entries, slowest first.
func Entries() []Entry {
	mu.Lock()
	list := make([]Entry, 0, len(entries))
	for _, e := range entries {
		list = append(list, *e)
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Total != list[j].Total {
			return list[i].Total > list[j].Total
		}
		return list[i].Name < list[j].Name
	})
	return list
}

// Calls returns how many times name was tracked this frame.
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	if e, ok := entries[name]; ok {
		return e.Calls
	}
	return 0
}

// SumWithPrefix adds up every entry whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var total time.Duration
	for k, e := range entries {
		if strings.HasPrefix(k, prefix) {
			total += e.Total
		}
	}
	return total
}

// TopN formats the n slowest entries of the frame, e.g.
// "waves.Update:1.2ms, editor.Render:0.4ms".
func TopN(n int) string {
	list := Entries()
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for _, e := range list[:n] {
		parts = append(parts, e.Name+":"+FormatMs(e.Total))
	}
	return strings.Join(parts, ", ")
}

// FormatMs renders d in milliseconds with one decimal, dropping ".0".
func FormatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}

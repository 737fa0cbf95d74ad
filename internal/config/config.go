package config

import "sync"

// RenderSettings holds editor window and LOD chain configuration
type RenderSettings struct {
	mu         sync.RWMutex
	lodCount   int
	fpsLimit   int // 0 means unlimited
	showLabels bool
}

var globalRenderSettings = &RenderSettings{
	lodCount:   8,
	fpsLimit:   60,
	showLabels: true,
}

// GetLodCount returns the number of LODs in the ocean chain
func GetLodCount() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.lodCount
}

// SetLodCount sets the number of LODs, clamped to 1..16
func SetLodCount(n int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if n < 1 {
		n = 1
	}
	if n > 16 {
		n = 16
	}
	globalRenderSettings.lodCount = n
}

// GetFPSLimit returns the frame cap, 0 for unlimited
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Negative values mean unlimited.
func SetFPSLimit(fps int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	if fps < 0 {
		fps = 0
	}
	if fps > 240 {
		fps = 240
	}
	globalRenderSettings.fpsLimit = fps
}

// GetShowLabels returns whether wavelength labels are drawn under the bars
func GetShowLabels() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.showLabels
}

func SetShowLabels(on bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.showLabels = on
}

package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical editor action, not a physical key
type Action int

// Action constants using iota
const (
	ActionPresetPhillips Action = iota
	ActionPresetPiersonMoskowitz
	ActionPresetJONSWAP
	ActionToggleAll
	ActionWindUp
	ActionWindDown
	ActionFetchUp
	ActionFetchDown
	ActionTurnLeft
	ActionTurnRight
	ActionReseed
	ActionSave
	ActionProfiles
	ActionToggleProfiling
	ActionToggleLabels
	ActionQuit
	ActionMouseLeft
	ActionModShift
	ActionModControl
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys and buttons to actions and tracks their
// per-frame edges
type InputManager struct {
	mu sync.RWMutex

	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates an InputManager with the default editor bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}

	im.BindKey(glfw.Key1, ActionPresetPhillips)
	im.BindKey(glfw.Key2, ActionPresetPiersonMoskowitz)
	im.BindKey(glfw.Key3, ActionPresetJONSWAP)
	im.BindKey(glfw.KeyA, ActionToggleAll)
	im.BindKey(glfw.KeyUp, ActionWindUp)
	im.BindKey(glfw.KeyDown, ActionWindDown)
	im.BindKey(glfw.KeyPageUp, ActionFetchUp)
	im.BindKey(glfw.KeyPageDown, ActionFetchDown)
	im.BindKey(glfw.KeyLeft, ActionTurnLeft)
	im.BindKey(glfw.KeyRight, ActionTurnRight)
	im.BindKey(glfw.KeyR, ActionReseed)
	im.BindKey(glfw.KeyS, ActionSave)
	im.BindKey(glfw.KeyO, ActionProfiles)
	im.BindKey(glfw.KeyV, ActionToggleProfiling)
	im.BindKey(glfw.KeyL, ActionToggleLabels)
	im.BindKey(glfw.KeyEscape, ActionQuit)

	im.BindMouseButton(glfw.MouseButtonLeft, ActionMouseLeft)

	im.BindKey(glfw.KeyLeftShift, ActionModShift)
	im.BindKey(glfw.KeyRightShift, ActionModShift)
	im.BindKey(glfw.KeyLeftControl, ActionModControl)
	im.BindKey(glfw.KeyRightControl, ActionModControl)

	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g. both shift keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event and updates internal state
// This can be called from a custom key callback
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.keyToActions[key]
	im.mu.RUnlock()

	if !exists {
		return
	}

	// Key repeat re-arms JustPressed so held arrows keep nudging.
	if action == glfw.Repeat {
		im.mu.Lock()
		for _, act := range actions {
			im.justPressed[act] = true
		}
		im.mu.Unlock()
		return
	}
	im.apply(actions, action == glfw.Press)
}

// HandleMouseButtonEvent processes a mouse button event and updates internal state
// This can be called from a custom mouse button callback
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.mouseButtonToActions[button]
	im.mu.RUnlock()

	if !exists {
		return
	}

	im.apply(actions, action == glfw.Press)
}

// apply records a press or release and its edge for every action.
func (im *InputManager) apply(actions []Action, isPressed bool) {
	im.mu.Lock()
	defer im.mu.Unlock()
	for _, act := range actions {
		if isPressed && !im.currentState[act] {
			im.justPressed[act] = true
		}
		if !isPressed && im.currentState[act] {
			im.justReleased[act] = true
		}
		im.currentState[act] = isPressed
	}
}

// PostUpdate clears the edge flags. Call it once at the end of each frame.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	im.justPressed = [ActionCount]bool{}
	im.justReleased = [ActionCount]bool{}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}

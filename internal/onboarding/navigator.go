package onboarding

import (
	"sort"
	"sync"
)

// Screen identifies one onboarding screen.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenValidator Screen = "validator"
)

// Navigator tracks the foreground screen and which screens were finished.
// A finished screen is unreachable; there is no back navigation.
type Navigator struct {
	mu       sync.RWMutex
	current  Screen
	finished map[Screen]bool
}

// NewNavigator starts on the login screen.
func NewNavigator() *Navigator {
	return &Navigator{current: ScreenLogin, finished: make(map[Screen]bool)}
}

// Current returns the foreground screen.
func (n *Navigator) Current() Screen {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.current
}

// Finished reports whether s was finished.
func (n *Navigator) Finished(s Screen) bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.finished[s]
}

// Start brings s to the foreground.
func (n *Navigator) Start(s Screen) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = s
	delete(n.finished, s)
}

// Finish destroys s.
func (n *Navigator) Finish(s Screen) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.finished[s] = true
}

// Snapshot is a point-in-time view of the navigator.
type Snapshot struct {
	Current  Screen   `json:"current"`
	Finished []Screen `json:"finished"`
}

// Snapshot returns the current state with finished screens sorted by name.
func (n *Navigator) Snapshot() Snapshot {
	n.mu.RLock()
	defer n.mu.RUnlock()
	finished := make([]Screen, 0, len(n.finished))
	for s := range n.finished {
		finished = append(finished, s)
	}
	sort.Slice(finished, func(i, j int) bool { return finished[i] < finished[j] })
	return Snapshot{Current: n.current, Finished: finished}
}

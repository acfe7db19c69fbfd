package permission

import "sync"

// StaticPlatform answers from a fixed set of granted capabilities. Requests
// for anything outside the set are denied asynchronously.
type StaticPlatform struct {
	mu      sync.RWMutex
	granted map[Capability]bool
}

// NewStaticPlatform builds a platform that has already granted the named capabilities.
func NewStaticPlatform(granted []string) *StaticPlatform {
	p := &StaticPlatform{granted: make(map[Capability]bool, len(granted))}
	for _, name := range granted {
		p.granted[Capability(name)] = true
	}
	return p
}

// Granted reports whether c is currently granted.
func (p *StaticPlatform) Granted(c Capability) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.granted[c]
}

// Request answers on a separate goroutine.
func (p *StaticPlatform) Request(caps []Capability, deliver func([]Result)) {
	results := make([]Result, 0, len(caps))
	for _, c := range caps {
		results = append(results, Result{Capability: c, Granted: p.Granted(c)})
	}
	go deliver(results)
}

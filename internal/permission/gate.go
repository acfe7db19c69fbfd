// Package permission checks device capabilities before the login screen uses
// them. The gate is advisory: it never blocks the caller.
package permission

import (
	"context"
	"log/slog"
	"sync"
)

// Capability names a platform permission.
type Capability string

// Capabilities the login screen needs.
const (
	SendSMS  Capability = "android.permission.SEND_SMS"
	Internet Capability = "android.permission.INTERNET"
)

// Required is the capability set requested when the login screen opens.
var Required = []Capability{SendSMS, Internet}

// Result is the platform's answer for one requested capability.
type Result struct {
	Capability Capability
	Granted    bool
}

// Platform grants capabilities. Request must return immediately and deliver
// the answers later, from any goroutine.
type Platform interface {
	Granted(c Capability) bool
	Request(caps []Capability, deliver func([]Result))
}

// Dialog is the modal shown after a denial.
type Dialog struct {
	Title   string
	Message string
	Button  string
}

// DeniedDialog is raised when any requested capability is refused.
var DeniedDialog = Dialog{
	Title:   "Permissões negadas",
	Message: "Para utilizar esse App, é necessario aceitar as permissões",
	Button:  "CONFIRMAR",
}

// Gate tracks outstanding permission requests for one screen.
type Gate struct {
	platform Platform
	logger   *slog.Logger
	onFinish func()

	mu       sync.Mutex
	inFlight chan struct{}
	dialog   *Dialog
	raised   bool
}

// NewGate builds a gate. onFinish runs when the denial dialog is acknowledged.
func NewGate(platform Platform, logger *slog.Logger, onFinish func()) *Gate {
	return &Gate{platform: platform, logger: logger, onFinish: onFinish}
}

// Ensure requests whatever in caps is not granted yet and returns true
// without waiting for the answer.
func (g *Gate) Ensure(_ context.Context, caps []Capability) bool {
	missing := make([]Capability, 0, len(caps))
	for _, c := range caps {
		if !g.platform.Granted(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) == 0 {
		return true
	}

	done := make(chan struct{})
	g.mu.Lock()
	g.inFlight = done
	g.mu.Unlock()

	if g.logger != nil {
		g.logger.Info("permission.request", slog.Any("capabilities", missing))
	}
	g.platform.Request(missing, func(results []Result) {
		g.handleResults(results)
		close(done)
	})
	return true
}

func (g *Gate) handleResults(results []Result) {
	for _, r := range results {
		if r.Granted {
			continue
		}
		g.mu.Lock()
		if !g.raised {
			d := DeniedDialog
			g.dialog = &d
			g.raised = true
		}
		g.mu.Unlock()
		if g.logger != nil {
			g.logger.Warn("permission.denied", slog.String("capability", string(r.Capability)))
		}
	}
}

// Wait blocks until the most recent request has been answered or ctx ends.
// It returns immediately when nothing is outstanding.
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	done := g.inFlight
	g.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PendingDialog returns the denial dialog if one is waiting to be acknowledged.
func (g *Gate) PendingDialog() (Dialog, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.dialog == nil {
		return Dialog{}, false
	}
	return *g.dialog, true
}

// Acknowledge dismisses the pending dialog and finishes the screen. It reports
// false when there was no dialog to acknowledge.
func (g *Gate) Acknowledge() bool {
	g.mu.Lock()
	if g.dialog == nil {
		g.mu.Unlock()
		return false
	}
	g.dialog = nil
	g.mu.Unlock()

	if g.onFinish != nil {
		g.onFinish()
	}
	return true
}

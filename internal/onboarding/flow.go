// Package onboarding implements the login and validator screens: a
// registration that persists a fresh token before texting it, and a
// verification that compares user input against the persisted token.
package onboarding

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/whatsclone/whatsclone/internal/permission"
	"github.com/whatsclone/whatsclone/internal/preferences"
)

// Dispatcher submits one SMS and reports whether the submission completed.
type Dispatcher interface {
	Send(ctx context.Context, destination, body string) bool
}

// PermissionGate requests device capabilities without blocking.
type PermissionGate interface {
	Ensure(ctx context.Context, caps []permission.Capability) bool
	Wait(ctx context.Context) error
}

// Options tunes a Flow.
type Options struct {
	// AwaitPermissions makes Register wait for an outstanding permission
	// request before dispatching. Off by default: the login screen proceeds
	// right after asking.
	AwaitPermissions bool
	// IntN overrides the token random source.
	IntN IntN
}

// Flow runs screen events one at a time, in arrival order. Store and dispatch
// calls happen synchronously inside that serialized section.
type Flow struct {
	ui sync.Mutex

	store  preferences.Store
	sms    Dispatcher
	gate   PermissionGate
	nav    *Navigator
	logger *slog.Logger
	opts   Options
}

// NewFlow wires the onboarding screens. gate may be nil.
func NewFlow(store preferences.Store, sms Dispatcher, gate PermissionGate, nav *Navigator, logger *slog.Logger, opts Options) *Flow {
	if nav == nil {
		nav = NewNavigator()
	}
	return &Flow{store: store, sms: sms, gate: gate, nav: nav, logger: logger, opts: opts}
}

// Navigator exposes the screen state.
func (f *Flow) Navigator() *Navigator {
	return f.nav
}

// OpenLogin asks for the login screen's capabilities. It always returns true.
func (f *Flow) OpenLogin(ctx context.Context) bool {
	f.ui.Lock()
	defer f.ui.Unlock()
	if f.gate == nil {
		return true
	}
	return f.gate.Ensure(ctx, permission.Required)
}

// Register handles a login submission. A failed dispatch is not an error: it
// is reported through the outcome's notice and leaves the freshly persisted
// token in place. Resubmitting overwrites it with a new one.
func (f *Flow) Register(ctx context.Context, reg Registration) (Outcome, error) {
	f.ui.Lock()
	defer f.ui.Unlock()

	if f.nav.Finished(ScreenLogin) {
		return Outcome{State: StateIdle, Screen: f.nav.Current()}, ErrScreenFinished
	}

	out := Outcome{State: StateIdle, Screen: ScreenLogin}

	token := NewToken(f.opts.IntN)
	out.State = StateTokenGenerated

	phone := FullPhoneNumber(reg.CountryCode, reg.AreaCode, reg.LocalNumber)
	out.Phone = phone

	if err := f.store.Save(ctx, reg.DisplayName, phone, token); err != nil {
		return out, fmt.Errorf("persist registration: %w", err)
	}
	out.State = StatePersisted

	if f.opts.AwaitPermissions && f.gate != nil {
		if err := f.gate.Wait(ctx); err != nil {
			return out, fmt.Errorf("await permissions: %w", err)
		}
	}

	if !f.sms.Send(ctx, Destination(phone), SMSBody(token)) {
		out.State = StateDispatchFailed
		out.Notice = &Notice{Kind: NoticeToast, Text: TextDispatchFailed}
		f.log(slog.LevelWarn, "registration.dispatch_failed", slog.String("phone", phone))
		return out, nil
	}

	out.State = StateDispatched
	f.nav.Start(ScreenValidator)
	f.nav.Finish(ScreenLogin)
	out.Screen = ScreenValidator
	f.log(slog.LevelInfo, "registration.dispatched", slog.String("phone", phone))
	return out, nil
}

// Verify compares code with the persisted token by exact string equality.
// When nothing was ever persisted the answer is a mismatch.
func (f *Flow) Verify(ctx context.Context, code string) (Verdict, error) {
	f.ui.Lock()
	defer f.ui.Unlock()

	rec, err := f.store.Load(ctx)
	if err != nil {
		return Verdict{}, fmt.Errorf("load registration: %w", err)
	}

	if rec.Token.Valid && rec.Token.String == code {
		f.log(slog.LevelInfo, "verification.matched")
		return Verdict{Valid: true, Notice: Notice{Kind: NoticeToast, Text: TextTokenValid}}, nil
	}
	f.log(slog.LevelInfo, "verification.mismatched", slog.Bool("token_present", rec.Token.Valid))
	return Verdict{Valid: false, Notice: Notice{Kind: NoticeToast, Text: TextTokenInvalid}}, nil
}

func (f *Flow) log(level slog.Level, msg string, attrs ...slog.Attr) {
	if f.logger == nil {
		return
	}
	f.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

package permission

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/whatsclone/whatsclone/internal/logging"
)

// manualPlatform holds the deliver callback until the test releases it.
type manualPlatform struct {
	granted   map[Capability]bool
	requested []Capability
	deliver   func([]Result)
}

func (p *manualPlatform) Granted(c Capability) bool { return p.granted[c] }

func (p *manualPlatform) Request(caps []Capability, deliver func([]Result)) {
	p.requested = caps
	p.deliver = deliver
}

func TestEnsureSkipsRequestWhenAllGranted(t *testing.T) {
	platform := &manualPlatform{granted: map[Capability]bool{SendSMS: true, Internet: true}}
	gate := NewGate(platform, logging.Discard(), nil)

	if !gate.Ensure(context.Background(), Required) {
		t.Fatalf("expected ensure to return true")
	}
	if platform.deliver != nil {
		t.Fatalf("expected no platform request")
	}
	if err := gate.Wait(context.Background()); err != nil {
		t.Fatalf("wait with nothing outstanding: %v", err)
	}
}

func TestEnsureRequestsOnlyMissingAndReturnsBeforeAnswer(t *testing.T) {
	platform := &manualPlatform{granted: map[Capability]bool{Internet: true}}
	gate := NewGate(platform, logging.Discard(), nil)

	if !gate.Ensure(context.Background(), Required) {
		t.Fatalf("expected ensure to return true")
	}
	if len(platform.requested) != 1 || platform.requested[0] != SendSMS {
		t.Fatalf("expected only SEND_SMS requested, got %v", platform.requested)
	}
	if _, ok := gate.PendingDialog(); ok {
		t.Fatalf("no dialog expected before the platform answers")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := gate.Wait(ctx); err == nil {
		t.Fatalf("expected wait to time out while the request is outstanding")
	}
}

func TestDenialRaisesSingleDialogAndAckFinishes(t *testing.T) {
	platform := &manualPlatform{granted: map[Capability]bool{}}
	var finished atomic.Int32
	gate := NewGate(platform, logging.Discard(), func() { finished.Add(1) })

	gate.Ensure(context.Background(), Required)
	platform.deliver([]Result{{Capability: SendSMS}, {Capability: Internet}})

	if err := gate.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	dialog, ok := gate.PendingDialog()
	if !ok {
		t.Fatalf("expected pending dialog")
	}
	if dialog != DeniedDialog {
		t.Fatalf("unexpected dialog %+v", dialog)
	}

	if !gate.Acknowledge() {
		t.Fatalf("expected acknowledge to consume the dialog")
	}
	if finished.Load() != 1 {
		t.Fatalf("expected screen finished once, got %d", finished.Load())
	}
	if gate.Acknowledge() {
		t.Fatalf("second acknowledge should be a no-op")
	}

	// A later denial on the same gate does not raise the dialog again.
	gate.Ensure(context.Background(), Required)
	platform.deliver([]Result{{Capability: SendSMS}})
	if _, ok := gate.PendingDialog(); ok {
		t.Fatalf("dialog should only be raised once per gate")
	}
}

func TestGrantedAnswerRaisesNoDialog(t *testing.T) {
	platform := &manualPlatform{granted: map[Capability]bool{}}
	gate := NewGate(platform, logging.Discard(), nil)

	gate.Ensure(context.Background(), Required)
	platform.deliver([]Result{{Capability: SendSMS, Granted: true}, {Capability: Internet, Granted: true}})

	if _, ok := gate.PendingDialog(); ok {
		t.Fatalf("expected no dialog when everything is granted")
	}
}

func TestStaticPlatformDeniesUnknownCapabilities(t *testing.T) {
	platform := NewStaticPlatform([]string{string(Internet)})
	gate := NewGate(platform, logging.Discard(), nil)

	if !gate.Ensure(context.Background(), Required) {
		t.Fatalf("expected ensure to return true")
	}
	if err := gate.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if _, ok := gate.PendingDialog(); !ok {
		t.Fatalf("expected denial dialog for SEND_SMS")
	}
}

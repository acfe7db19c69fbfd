package onboarding

import "testing"

func TestNavigatorStartsOnLogin(t *testing.T) {
	nav := NewNavigator()
	if nav.Current() != ScreenLogin {
		t.Fatalf("expected login, got %s", nav.Current())
	}
	snap := nav.Snapshot()
	if len(snap.Finished) != 0 {
		t.Fatalf("expected nothing finished, got %v", snap.Finished)
	}
}

func TestNavigatorFinishAndStart(t *testing.T) {
	nav := NewNavigator()
	nav.Start(ScreenValidator)
	nav.Finish(ScreenLogin)

	snap := nav.Snapshot()
	if snap.Current != ScreenValidator {
		t.Fatalf("expected validator in foreground, got %s", snap.Current)
	}
	if len(snap.Finished) != 1 || snap.Finished[0] != ScreenLogin {
		t.Fatalf("expected login finished, got %v", snap.Finished)
	}

	nav.Start(ScreenLogin)
	if nav.Finished(ScreenLogin) {
		t.Fatalf("starting a screen again clears its finished flag")
	}
}

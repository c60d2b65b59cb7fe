package main

import (
	"testing"

	"github.com/calebmorten/studypilot/tray"
)

type stubWindow struct {
	shows   int
	hides   int
	focuses int
}

func (w *stubWindow) Show()  { w.shows++ }
func (w *stubWindow) Hide()  { w.hides++ }
func (w *stubWindow) Focus() { w.focuses++ }

func TestWindowServiceLookup(t *testing.T) {
	t.Parallel()

	svc := NewWindowService()
	if _, ok := svc.Window("main"); ok {
		t.Fatalf("lookup before registration should miss")
	}

	win := &stubWindow{}
	svc.RegisterWindow("main", win)

	handle, ok := svc.Window("main")
	if !ok {
		t.Fatalf("expected lookup to succeed after registration")
	}

	handle.Hide()
	if win.hides != 1 {
		t.Fatalf("expected hide to reach the underlying window, got %d", win.hides)
	}
	if svc.IsVisible("main") {
		t.Fatalf("service should track the window as hidden")
	}

	handle.Show()
	if win.shows != 1 {
		t.Fatalf("expected show to reach the underlying window, got %d", win.shows)
	}
	if !svc.IsVisible("main") {
		t.Fatalf("service should track the window as visible")
	}
}

func TestWindowServiceMissingNameIsNoop(t *testing.T) {
	t.Parallel()

	svc := NewWindowService()

	// None of these may panic.
	svc.Show("main")
	svc.Hide("main")
	svc.Focus("main")
	svc.ToggleVisibility("main")

	if svc.IsVisible("main") {
		t.Fatalf("unregistered window must not report visible")
	}
}

func TestWindowServiceToggle(t *testing.T) {
	t.Parallel()

	svc := NewWindowService()
	win := &stubWindow{}
	svc.RegisterWindow("main", win)

	svc.ToggleVisibility("main")
	if svc.IsVisible("main") {
		t.Fatalf("toggle from visible should hide")
	}

	svc.ToggleVisibility("main")
	if !svc.IsVisible("main") {
		t.Fatalf("toggle from hidden should show")
	}
	if win.focuses == 0 {
		t.Fatalf("toggle-show should focus the window")
	}
}

func TestWindowServiceSatisfiesRouterInterfaces(t *testing.T) {
	t.Parallel()

	var _ tray.WindowFinder = NewWindowService()
}

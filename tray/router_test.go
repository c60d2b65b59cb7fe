package tray

import "testing"

type fakeWindow struct {
	visible bool
	focused bool
}

func (w *fakeWindow) Show()  { w.visible = true }
func (w *fakeWindow) Hide()  { w.visible = false; w.focused = false }
func (w *fakeWindow) Focus() { w.focused = true }

type fakeFinder struct {
	windows map[string]*fakeWindow
}

func (f *fakeFinder) Window(name string) (Window, bool) {
	win, ok := f.windows[name]
	if !ok {
		return nil, false
	}
	return win, true
}

type fakeCloseEvent struct {
	cancelled bool
}

func (e *fakeCloseEvent) Cancel() { e.cancelled = true }

func newFixture(visible bool) (*Router, *fakeWindow, *int) {
	win := &fakeWindow{visible: visible}
	finder := &fakeFinder{windows: map[string]*fakeWindow{MainWindowName: win}}
	quits := 0
	router := NewRouter(finder, func() { quits++ })
	return router, win, &quits
}

func TestHandleMenuShowGrantsFocus(t *testing.T) {
	t.Parallel()

	router, win, quits := newFixture(false)

	router.HandleMenu(MenuIDShow)
	if !win.visible {
		t.Fatalf("expected window visible after show")
	}
	if !win.focused {
		t.Fatalf("expected window focused after show")
	}

	// Showing an already-visible window is harmless.
	router.HandleMenu(MenuIDShow)
	if !win.visible || !win.focused {
		t.Fatalf("show should be idempotent")
	}
	if *quits != 0 {
		t.Fatalf("show must not quit the application")
	}
}

func TestHandleMenuHide(t *testing.T) {
	t.Parallel()

	router, win, quits := newFixture(true)

	router.HandleMenu(MenuIDHide)
	if win.visible {
		t.Fatalf("expected window hidden after hide")
	}

	router.HandleMenu(MenuIDHide)
	if win.visible {
		t.Fatalf("hide should be idempotent")
	}
	if *quits != 0 {
		t.Fatalf("hide must not quit the application")
	}
}

func TestHandleMenuQuit(t *testing.T) {
	t.Parallel()

	for _, visible := range []bool{true, false} {
		router, win, quits := newFixture(visible)

		router.HandleMenu(MenuIDQuit)
		if *quits != 1 {
			t.Fatalf("expected one quit, got %d", *quits)
		}
		if win.visible != visible {
			t.Fatalf("quit must not touch window visibility")
		}
	}
}

func TestHandleMenuUnknownIdentifier(t *testing.T) {
	t.Parallel()

	router, win, quits := newFixture(true)

	for _, id := range []string{"", "settings", "SHOW", "quit ", "about"} {
		router.HandleMenu(id)
	}

	if !win.visible {
		t.Fatalf("unknown identifiers must not change window state")
	}
	if *quits != 0 {
		t.Fatalf("unknown identifiers must not quit")
	}
}

func TestHandleMenuMissingWindow(t *testing.T) {
	t.Parallel()

	finder := &fakeFinder{windows: map[string]*fakeWindow{}}
	quits := 0
	router := NewRouter(finder, func() { quits++ })

	// Neither show nor hide may panic or quit when the main window has
	// not been created yet.
	router.HandleMenu(MenuIDShow)
	router.HandleMenu(MenuIDHide)

	if quits != 0 {
		t.Fatalf("missing window must be a no-op, got %d quits", quits)
	}
}

func TestHandleWindowClosingHidesInsteadOfClosing(t *testing.T) {
	t.Parallel()

	router, win, quits := newFixture(true)
	event := &fakeCloseEvent{}

	router.HandleWindowClosing(event)

	if !event.cancelled {
		t.Fatalf("close request must be cancelled")
	}
	if win.visible {
		t.Fatalf("window must be hidden instead of closed")
	}
	if *quits != 0 {
		t.Fatalf("closing the window must not terminate the process")
	}

	// The tray remains usable afterwards: show brings the window back.
	router.HandleMenu(MenuIDShow)
	if !win.visible {
		t.Fatalf("expected show to restore the window after close-to-tray")
	}
}

func TestHandleWindowClosingWithoutWindow(t *testing.T) {
	t.Parallel()

	finder := &fakeFinder{windows: map[string]*fakeWindow{}}
	router := NewRouter(finder, func() { t.Fatal("unexpected quit") })
	event := &fakeCloseEvent{}

	router.HandleWindowClosing(event)

	if !event.cancelled {
		t.Fatalf("close request must still be cancelled when lookup misses")
	}
}

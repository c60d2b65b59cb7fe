package main

import (
	"sync"

	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/calebmorten/studypilot/tray"
)

// WindowService keeps the registry of named application windows and
// tracks their visibility. It is the toolkit side of the tray router's
// WindowFinder interface: every lookup goes through the registry at event
// time, so a window that was never created (or was torn down) simply
// resolves to nothing.
//
// Tray and window events arrive on the UI thread, but the global hotkey
// fires on its own goroutine, hence the mutex.
type WindowService struct {
	mu      sync.RWMutex
	windows map[string]tray.Window
	visible map[string]bool
}

func NewWindowService() *WindowService {
	return &WindowService{
		windows: make(map[string]tray.Window),
		visible: make(map[string]bool),
	}
}

// RegisterWindow registers a window under a logical name. Windows are
// created visible by the toolkit.
func (s *WindowService) RegisterWindow(name string, win tray.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[name] = win
	s.visible[name] = true
}

// Window resolves a window by name. The returned handle routes show/hide
// back through the service so visibility tracking stays consistent no
// matter which path (tray, hotkey, close hook) triggered the change.
func (s *WindowService) Window(name string) (tray.Window, bool) {
	s.mu.RLock()
	_, ok := s.windows[name]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return serviceWindow{svc: s, name: name}, true
}

// Show makes the named window visible. Unknown names are ignored.
func (s *WindowService) Show(name string) {
	s.mu.Lock()
	win, ok := s.windows[name]
	if ok {
		s.visible[name] = true
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	win.Show()
}

// Hide hides the named window. Unknown names are ignored.
func (s *WindowService) Hide(name string) {
	s.mu.Lock()
	win, ok := s.windows[name]
	if ok {
		s.visible[name] = false
	}
	s.mu.Unlock()
	if !ok {
		return
	}
	win.Hide()
}

// Focus gives the named window input focus. On macOS this also activates
// the application, which an accessory-policy (dockless) app needs before
// any window of its own can become key.
func (s *WindowService) Focus(name string) {
	s.mu.RLock()
	win, ok := s.windows[name]
	s.mu.RUnlock()
	if !ok {
		return
	}
	win.Focus()
	focusAppWindow()
}

// ToggleVisibility flips the named window between shown and hidden.
func (s *WindowService) ToggleVisibility(name string) {
	if s.IsVisible(name) {
		s.Hide(name)
		return
	}
	s.Show(name)
	s.Focus(name)
}

// IsVisible reports the tracked visibility of the named window.
func (s *WindowService) IsVisible(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.visible[name]
}

// serviceWindow adapts a registry entry to tray.Window while keeping the
// service's visibility bookkeeping in the loop.
type serviceWindow struct {
	svc  *WindowService
	name string
}

func (w serviceWindow) Show()  { w.svc.Show(w.name) }
func (w serviceWindow) Hide()  { w.svc.Hide(w.name) }
func (w serviceWindow) Focus() { w.svc.Focus(w.name) }

// wrapWindow adapts a Wails webview window to tray.Window. The Wails
// methods return the window for chaining, which keeps the concrete type
// from satisfying the interface directly.
func wrapWindow(win *application.WebviewWindow) tray.Window {
	return wailsWindow{win: win}
}

type wailsWindow struct {
	win *application.WebviewWindow
}

func (w wailsWindow) Show()  { w.win.Show() }
func (w wailsWindow) Hide()  { w.win.Hide() }
func (w wailsWindow) Focus() { w.win.Focus() }

package tray

// Menu item identifiers. These are stable wire-level names: the frontend
// and any future tray entries key off them, so they never get localized.
const (
	MenuIDShow = "show"
	MenuIDHide = "hide"
	MenuIDQuit = "quit"
)

// MainWindowName is the logical name the main webview window is
// registered under.
const MainWindowName = "main"

// Window is one application window as the router sees it.
type Window interface {
	Show()
	Hide()
	Focus()
}

// WindowFinder resolves a window by its logical name. Lookup happens at
// event time, never cached: the window may not exist yet or may already
// have been destroyed, and callers treat absence as a no-op.
type WindowFinder interface {
	Window(name string) (Window, bool)
}

// CloseEvent is the cancellable close-request delivered by the toolkit.
type CloseEvent interface {
	Cancel()
}

// Router translates tray menu activations and window lifecycle events
// into actions on the application. It holds no window handles of its own
// and is independent of the windowing toolkit, so the same routing applies
// whichever toolkit adapter sits behind the interfaces.
type Router struct {
	windows WindowFinder
	quit    func()
}

func NewRouter(windows WindowFinder, quit func()) *Router {
	return &Router{windows: windows, quit: quit}
}

// HandleMenu routes a tray menu activation by item identifier.
// Unknown identifiers are ignored so that newer frontends can ship menu
// items this build doesn't know about.
func (r *Router) HandleMenu(id string) {
	switch id {
	case MenuIDQuit:
		r.quit()
	case MenuIDHide:
		if win, ok := r.windows.Window(MainWindowName); ok {
			win.Hide()
		}
	case MenuIDShow:
		if win, ok := r.windows.Window(MainWindowName); ok {
			win.Show()
			win.Focus()
		}
	}
}

// HandleWindowClosing intercepts a close request on the main window:
// the close is cancelled and the window hidden instead, so the tray icon
// stays operable while the process lives on in the background.
func (r *Router) HandleWindowClosing(e CloseEvent) {
	e.Cancel()
	if win, ok := r.windows.Window(MainWindowName); ok {
		win.Hide()
	}
}

package main

import (
	"log/slog"
	"time"

	"golang.design/x/hotkey"

	"github.com/wailsapp/wails/v3/pkg/application"

	"github.com/calebmorten/studypilot/tray"
)

// HotkeyService toggles main-window visibility on a global keyboard
// shortcut, so the window can be summoned while the app sits in the tray.
type HotkeyService struct {
	app           *application.App
	windowService *WindowService
}

func NewHotkeyService(windowService *WindowService) *HotkeyService {
	return &HotkeyService{windowService: windowService}
}

func (s *HotkeyService) SetApp(app *application.App) {
	s.app = app
}

// StartHotkeyListener registers the global shortcut and blocks serving
// keydown events. Run it on a dedicated goroutine; macOS additionally
// requires that goroutine to be locked to an OS thread.
func (s *HotkeyService) StartHotkeyListener() {
	visHk := hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeyS)
	if err := visHk.Register(); err != nil {
		slog.Error("failed to register global hotkey", "error", err)
		return
	}
	slog.Info("global hotkey registered", "hotkey", "ctrl+shift+s")

	for range visHk.Keydown() {
		s.windowService.ToggleVisibility(tray.MainWindowName)
		if s.app != nil {
			s.app.EmitEvent("Backend:GlobalHotkeyEvent", time.Now().String())
		}
	}
}

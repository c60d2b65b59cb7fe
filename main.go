package main

import (
	"embed"
	"log"
	"log/slog"
	"runtime"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"

	"github.com/calebmorten/studypilot/config"
	"github.com/calebmorten/studypilot/notifyservice"
	"github.com/calebmorten/studypilot/startupservice"
	"github.com/calebmorten/studypilot/storeservice"
	"github.com/calebmorten/studypilot/tray"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed build/trayicon.png
var trayIcon []byte

// main wires the desktop shell together: the webview window hosting the
// planner frontend, the tray icon that controls its visibility, and the
// store/notification/startup services the frontend talks to. All setup
// failures are fatal; there is no degraded mode worth running in.
func main() {
	config.Load()
	setupLogging()

	storeService := storeservice.NewStoreService()
	notifyService := notifyservice.NewNotifyService()
	startupService, err := startupservice.NewStartupService()
	if err != nil {
		log.Fatal(err)
	}
	windowService := NewWindowService()
	hotkeyService := NewHotkeyService(windowService)

	app := application.New(application.Options{
		Name:        "StudyPilot",
		Description: "Study planner desktop shell",
		Services: []application.Service{
			application.NewService(storeService),
			application.NewService(notifyService),
			application.NewService(startupService),
			application.NewService(windowService),
		},
		Assets: application.AssetOptions{
			Handler: application.AssetFileServerFS(assets),
		},
		Mac: application.MacOptions{
			// The tray icon keeps the process alive; closing the last
			// window must not terminate it.
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
	})

	// Tray-resident app: stay out of the dock and CMD+Tab.
	hideAppFromDock()

	storeService.SetApp(app)
	notifyService.SetApp(app)
	hotkeyService.SetApp(app)

	mainWindow := app.NewWebviewWindowWithOptions(application.WebviewWindowOptions{
		Title:     "StudyPilot",
		Width:     1200,
		Height:    800,
		MinWidth:  900,
		MinHeight: 600,
		Mac: application.MacWindow{
			InvisibleTitleBarHeight: 50,
			TitleBar: application.MacTitleBar{
				AppearsTransparent: true,
				HideTitle:          true,
			},
		},
		BackgroundColour: application.NewRGBA(248, 248, 252, 255),
		URL:              "/",
	})

	windowService.RegisterWindow(tray.MainWindowName, wrapWindow(mainWindow))

	router := tray.NewRouter(windowService, app.Quit)

	// Closing the window hides it; only the tray's Quit ends the process.
	mainWindow.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		router.HandleWindowClosing(e)
	})

	if err := tray.Setup(app, router, trayIcon); err != nil {
		log.Fatal(err)
	}

	go func() {
		runtime.LockOSThread() // required by macOS for hotkey delivery
		hotkeyService.StartHotkeyListener()
	}()

	slog.Info("shell ready", "window", tray.MainWindowName)

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

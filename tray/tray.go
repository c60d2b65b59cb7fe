package tray

import (
	"errors"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// Setup builds the static tray menu and attaches it to the system tray
// icon. The menu is fixed for the process lifetime: Show, Hide, a
// separator, Quit. Clicks are delivered to the router by item identifier.
//
// Setup runs once during application bootstrap; any error aborts startup.
func Setup(app *application.App, router *Router, trayIcon []byte) error {
	if app == nil {
		return errors.New("tray: nil application")
	}
	if router == nil {
		return errors.New("tray: nil router")
	}
	if len(trayIcon) == 0 {
		return errors.New("tray: empty tray icon")
	}

	tray := app.NewSystemTray()
	menu := application.NewMenu()

	menu.Add("Show").OnClick(func(_ *application.Context) {
		router.HandleMenu(MenuIDShow)
	})
	menu.Add("Hide").OnClick(func(_ *application.Context) {
		router.HandleMenu(MenuIDHide)
	})
	menu.AddSeparator()
	menu.Add("Quit").OnClick(func(_ *application.Context) {
		router.HandleMenu(MenuIDQuit)
	})

	tray.SetMenu(menu)
	tray.SetIcon(trayIcon)
	return nil
}

package startupservice

import (
	"fmt"
	"os"

	"github.com/protonmail/go-autostart"
)

// StartupService toggles launching the shell at login. A tray-resident
// app is only useful if it is actually running, so the frontend exposes
// this as a settings switch.
type StartupService struct {
	app *autostart.App
}

// NewStartupService resolves the running executable and wraps it in an
// autostart entry. Registering a login item for an unknown path would
// silently enable nothing, so the resolution failure is surfaced and
// treated like any other setup failure.
func NewStartupService() (*StartupService, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable for login item: %w", err)
	}

	app := &autostart.App{
		Name:        "StudyPilot",
		DisplayName: "StudyPilot",
		Exec:        []string{execPath},
	}

	return &StartupService{app: app}, nil
}

func (s *StartupService) EnableLaunchAtLogin() error {
	return s.app.Enable()
}

func (s *StartupService) DisableLaunchAtLogin() error {
	return s.app.Disable()
}

func (s *StartupService) IsEnabled() bool {
	return s.app.IsEnabled()
}

package notifyservice

import (
	"log/slog"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// Notification is a local notification shown by the frontend toast layer.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NotifyService delivers local notifications. Delivery is fire-and-forget:
// the service pushes an event to the frontend and logs it, and nothing
// flows back into the rest of the shell.
type NotifyService struct {
	app *application.App
}

func NewNotifyService() *NotifyService {
	return &NotifyService{}
}

func (s *NotifyService) SetApp(app *application.App) {
	s.app = app
}

// Notify emits a notification. Safe to call before the application is
// running; the notification is then only logged.
func (s *NotifyService) Notify(title, body string) {
	slog.Info("notification", "title", title, "body", body)
	if s.app == nil {
		return
	}
	s.app.EmitEvent("Backend:Notification", Notification{Title: title, Body: body})
}

package notifyservice

import "testing"

func TestNotifyWithoutRunningApp(t *testing.T) {
	t.Parallel()

	svc := NewNotifyService()

	// Startup notifications can fire before the event loop exists; they
	// must degrade to log-only instead of panicking.
	svc.Notify("Session due", "Linear algebra starts in 10 minutes")
}

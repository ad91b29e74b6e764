package services

// Notifier pushes events to connected clients. The websocket manager
// implements it; a nil-safe no-op is used in tests.
type Notifier interface {
	NotifyUser(userID string, event string, payload interface{})
}

type noopNotifier struct{}

func (noopNotifier) NotifyUser(string, string, interface{}) {}

// NoopNotifier is used when no websocket manager is wired.
var NoopNotifier Notifier = noopNotifier{}

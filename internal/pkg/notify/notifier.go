// internal/pkg/notify/notifier.go
package notify

import (
	"github.com/sirupsen/logrus"
)

// Notifier is the fire-and-forget user feedback boundary. Services call
// it after a mutation completes; it must never block or fail the caller.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier emits notifications as structured log entries. The UI
// layer consuming the API renders its own toasts from response payloads;
// server side, notifications land in the log stream.
type LogNotifier struct {
	logger *logrus.Logger
}

// NewLogNotifier creates a notifier backed by the given logger.
func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Success implements Notifier.
func (n *LogNotifier) Success(message string) {
	n.logger.WithField("kind", "success").Info(message)
}

// Error implements Notifier.
func (n *LogNotifier) Error(message string) {
	n.logger.WithField("kind", "error").Warn(message)
}

// NopNotifier discards all notifications. Used in tests.
type NopNotifier struct{}

// Success implements Notifier.
func (NopNotifier) Success(string) {}

// Error implements Notifier.
func (NopNotifier) Error(string) {}

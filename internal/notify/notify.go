// Package notify delivers fire-and-forget desktop notifications.
package notify

import (
	"log/slog"
	"os/exec"
)

// Sink receives save notifications. Implementations must never block the
// capture pipeline and must swallow their own failures.
type Sink interface {
	Notify(title, message string)
}

// Desktop sends notifications through notify-send. Errors are logged at
// debug level and otherwise ignored.
type Desktop struct{}

// Notify implements Sink.
func (Desktop) Notify(title, message string) {
	go func() {
		if err := exec.Command("notify-send", "--app-name", "clipkeep",
			title, message).Run(); err != nil {
			slog.Debug("notification failed", "error", err)
		}
	}()
}

// Log writes notifications to the log instead of the desktop. Used when
// notifications are disabled or no display is available.
type Log struct{}

// Notify implements Sink.
func (Log) Notify(title, message string) {
	slog.Info(title, "message", message)
}

// Discard drops every notification.
type Discard struct{}

// Notify implements Sink.
func (Discard) Notify(string, string) {}

// Package notify defines the user-facing notification sink. Notifications
// are fire-and-forget: the workflow core emits them and never waits for or
// inspects an acknowledgment.
package notify

import (
	"context"

	"github.com/dmitrijs2005/jobintake/internal/logging"
)

// Severity classifies a notification for presentation purposes.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier delivers a single title/message/severity event to the user.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, title string, message string)
}

// LogNotifier renders notifications through a structured logger. The CLI
// uses it as its toast channel.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, severity Severity, title string, message string) {
	switch severity {
	case SeverityWarning:
		n.logger.Warn(ctx, message, "title", title)
	case SeverityError:
		n.logger.Error(ctx, message, "title", title)
	default:
		n.logger.Info(ctx, message, "title", title, "severity", string(severity))
	}
}

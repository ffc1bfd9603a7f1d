// Package notify presents action outcomes
package notify

import (
	"github.com/rs/zerolog"

	"diario/internal/ports"
)

// Log writes notifications as log events: successes at info, failures at warn
type Log struct {
	logger zerolog.Logger
}

// Ensure Log implements Notifier
var _ ports.Notifier = (*Log)(nil)

// NewLog creates a notifier over logger
func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

// Notify implements ports.Notifier
func (l *Log) Notify(n ports.Notification) {
	ev := l.logger.Info()
	if n.Kind == ports.NotificationError {
		ev = l.logger.Warn()
	}
	ev.Str("kind", n.Kind.String()).Str("title", n.Title).Msg(n.Description)
}

package session

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option customizes a Session.
type Option func(*Session)

// WithLogger sets the logger receiving per-cell Debug and per-sweep Info
// entries. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}
	return func(s *Session) {
		s.log = l
	}
}

// discardLogger is the default: entries are formatted nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}

package log

// MultiLogger fans every event out to a set of loggers. The usual
// pairing is an SlogAdapter for the console next to a FileLogger for
// the durable record.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger builds a MultiLogger over the given loggers. Events
// are delivered in argument order.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log delivers the event to every configured logger.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)

package core

// Logger is the logging sink used throughout the pipeline components
// (C1-C6). It is implemented by LogrusAdapter for production use and by
// SimpleLogger (a no-op) where no logger is configured.
type Logger interface {
	Criticalf(format string, args ...any)
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
	Noticef(format string, args ...any)
	Warningf(format string, args ...any)
}

// SimpleLogger discards every message. Useful as a default when no
// logger has been wired in yet (e.g. early in bootstrap) or in tests
// that don't care about log output.
type SimpleLogger struct{}

func (s *SimpleLogger) Criticalf(format string, args ...any) {}
func (s *SimpleLogger) Debugf(format string, args ...any)    {}
func (s *SimpleLogger) Errorf(format string, args ...any)    {}
func (s *SimpleLogger) Noticef(format string, args ...any)   {}
func (s *SimpleLogger) Warningf(format string, args ...any)  {}

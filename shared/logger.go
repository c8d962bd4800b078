package shared

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_logger.go -package mocks github.com/Etch-Social/etch-local/shared ILogger

// ILogger is the logging interface used throughout the service.
// *github.com/charmbracelet/log.Logger satisfies it.
type ILogger interface {
	Printf(format string, args ...interface{})
	Debug(msg interface{}, keyvals ...interface{})
	Debugf(format string, args ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Infof(format string, args ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
	Warnf(format string, args ...interface{})
	Error(msg interface{}, keyvals ...interface{})
	Errorf(format string, args ...interface{})
}

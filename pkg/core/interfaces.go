package core

// Logger interface for sampler diagnostics
type Logger interface {
	Printf(format string, args ...interface{})
}

package sampling

import (
	"fmt"

	"github.com/df07/go-render-sampling/pkg/core"
)

// DefaultLogger prints sampler diagnostics straight to stdout.
type DefaultLogger struct{}

// Printf satisfies core.Logger.
func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger returns a stdout-backed logger for hosts that want the
// init diagnostics without wiring their own.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Package logging provides the application.Logger backed by the standard
// log package, the way the teacher repo's logging package does.
package logging

import (
	"log"

	"github.com/samir0909/flyingcarpet/application"
)

// StdLogger is an application.Logger that writes through the standard
// library's default logger.
type StdLogger struct{}

// New returns the default StdLogger.
func New() application.Logger {
	return StdLogger{}
}

func (StdLogger) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// Package applog is the engine's only logging surface: a thin wrapper over
// the standard log package, matching the teacher's total absence of a
// logging framework (see DESIGN.md).
package applog

import (
	"fmt"
	"log"
	"os"
)

var std = log.New(os.Stderr, "", 0)

// Errorf logs a non-fatal, swallowed error (failed git commands in the
// synchronous foreground handlers and in the job worker); the caller keeps
// running and the next refresh reconciles state.
func Errorf(format string, args ...any) {
	std.Printf("gitwatch: error: %s", fmt.Sprintf(format, args...))
}

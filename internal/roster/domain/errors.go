package domain

import (
	"fmt"
	"strings"
)

// ValidationError aggregates every structural problem found in a Request so
// a caller sees the whole picture instead of one failure at a time.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("invalid request: %s", e.Violations[0])
	}
	return fmt.Sprintf("invalid request: %d violations: %s", len(e.Violations), strings.Join(e.Violations, "; "))
}

// Add appends a violation message.
func (e *ValidationError) Add(format string, args ...any) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any violation was recorded.
func (e *ValidationError) HasErrors() bool { return len(e.Violations) > 0 }

// ErrOrNil returns e as an error if it carries violations, else nil.
func (e *ValidationError) ErrOrNil() error {
	if e.HasErrors() {
		return e
	}
	return nil
}

package diag

import (
	"fmt"
	"runtime"
)

// Severity classifies a Failure.
type Severity int

const (
	// User marks a recoverable precondition violation by the caller.
	User Severity = iota

	// Internal marks a broken invariant inside the engine itself.
	Internal
)

// String returns "user" or "internal".
func (s Severity) String() string {
	if s == Internal {
		return "internal"
	}
	return "user"
}

// Failure is the error type produced by this package.
//
// User failures wrap a sentinel cause (available through errors.Is /
// errors.Unwrap). Internal failures additionally record the violated
// condition and the file:line that raised them.
type Failure struct {
	Severity  Severity
	Op        string // operation that failed, e.g. "expr.Commutator"
	Condition string // violated condition text, internal failures only
	File      string
	Line      int

	msg   string
	cause error
}

// Error renders the failure. Internal failures include enough context
// (operation, condition, location) to debug the engine.
func (f *Failure) Error() string {
	if f.Severity == Internal {
		return fmt.Sprintf("internal error: %s: condition %q violated at %s:%d: %s",
			f.Op, f.Condition, f.File, f.Line, f.msg)
	}
	if f.cause != nil {
		return fmt.Sprintf("%s: %s: %v", f.Op, f.msg, f.cause)
	}
	return fmt.Sprintf("%s: %s", f.Op, f.msg)
}

// Unwrap exposes the sentinel cause of a user failure for errors.Is.
func (f *Failure) Unwrap() error { return f.cause }

// Userf reports a user-severity failure for operation op, wrapping the
// sentinel cause (which may be nil).
func Userf(op string, cause error, format string, args ...interface{}) error {
	return &Failure{
		Severity: User,
		Op:       op,
		msg:      fmt.Sprintf(format, args...),
		cause:    cause,
	}
}

// Internalf reports an internal-severity failure for operation op. The
// condition string is the invariant that was found broken; the caller's
// file and line are captured automatically.
func Internalf(op, condition, format string, args ...interface{}) error {
	file, line := "?", 0
	if _, f, l, ok := runtime.Caller(1); ok {
		file, line = f, l
	}
	return &Failure{
		Severity:  Internal,
		Op:        op,
		Condition: condition,
		File:      file,
		Line:      line,
		msg:       fmt.Sprintf(format, args...),
	}
}

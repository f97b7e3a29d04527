package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrParse               = errors.New("parse error")
	ErrFormat              = errors.New("format error")
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
	ErrExhaustedInput      = errors.New("exhausted input")
	ErrUnknownDay          = errors.New("unknown day")
)

// Error wraps one of the sentinels with the operation that failed and,
// when known, the 1-based input line it failed on.
type Error struct {
	Op   string
	Kind error
	Line int
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Line > 0 {
		base += fmt.Sprintf(" (line=%d)", e.Line)
	}
	if e.Msg != "" {
		base += ": " + e.Msg
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func ParseErr(op string, line int, msg string, cause error) error {
	return &Error{Op: op, Kind: ErrParse, Line: line, Msg: msg, Err: cause}
}

func FormatErr(op string, msg string) error {
	return &Error{Op: op, Kind: ErrFormat, Msg: msg}
}

// AtLine returns a copy of err with its line set, if err is an *Error without one.
func AtLine(err error, line int) error {
	var pe *Error
	if !errors.As(err, &pe) || pe.Line != 0 {
		return err
	}
	cp := *pe
	cp.Line = line
	return &cp
}

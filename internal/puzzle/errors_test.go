package puzzle

import (
	"errors"
	"strconv"
	"testing"
)

func TestErrorWrapUnwrap(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := ParseErr("parse line", 3, `"x"`, cause)

	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected errors.Is to match ErrParse")
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Fatalf("expected errors.Is to match the cause")
	}
	if errors.Is(err, ErrFormat) {
		t.Fatalf("did not expect ErrFormat")
	}

	var got *Error
	if !errors.As(err, &got) {
		t.Fatalf("expected errors.As to match *Error")
	}
	if got.Line != 3 {
		t.Fatalf("expected line 3, got %d", got.Line)
	}
}

func TestErrorMessage(t *testing.T) {
	err := FormatErr("new board", "expected 5 rows, got 4")
	want := "new board: format error: expected 5 rows, got 4"
	if err.Error() != want {
		t.Errorf("Error() = %q; want %q", err.Error(), want)
	}
}

func TestAtLine(t *testing.T) {
	err := AtLine(ParseErr("parse command", 0, "bad", nil), 7)

	var got *Error
	if !errors.As(err, &got) || got.Line != 7 {
		t.Fatalf("expected line 7, got %v", err)
	}

	// an existing line is kept
	err = AtLine(err, 9)
	if !errors.As(err, &got) || got.Line != 7 {
		t.Fatalf("expected line to stay 7, got %v", err)
	}

	plain := errors.New("plain")
	if AtLine(plain, 2) != plain {
		t.Errorf("expected non-puzzle errors to pass through")
	}
}

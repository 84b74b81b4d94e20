package sheet

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidFormat is wrapped by every error caused by the shape of a file.
var ErrInvalidFormat = errors.New("invalid file format")

// FormatError describes where a file deviates from the expected layout.
type FormatError struct {
	// File is the original file name.
	File string
	// Row is the 1-based spreadsheet row, zero when not row specific.
	Row int
	// Column is the header of the offending column, if any.
	Column string
	// Reason explains the problem.
	Reason string
	// Err is the underlying decoder error, if any.
	Err error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString(ErrInvalidFormat.Error())
	if e.File != "" {
		fmt.Fprintf(&b, " %q", e.File)
	}
	if e.Row > 0 {
		fmt.Fprintf(&b, " row %d", e.Row)
	}
	if e.Column != "" {
		fmt.Fprintf(&b, " column %q", e.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Is reports ErrInvalidFormat for every FormatError.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

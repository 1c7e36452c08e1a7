package ircode

import (
	"errors"
	"fmt"
)

// ErrorKind classifies conversion failures. The set is closed: batch callers
// switch on the kind to aggregate per-command results instead of unwinding.
type ErrorKind int

const (
	// MalformedInput marks structurally invalid source data: truncated
	// codes, wrong group counts, durations outside the accepted range.
	MalformedInput ErrorKind = iota
	// UnsupportedProtocol marks a recognized but unimplemented encoding
	// scheme, e.g. protocol-defined (non-raw) Pronto codes.
	UnsupportedProtocol
	// ValueOutOfRange marks a computed value that the wire format cannot
	// represent.
	ValueOutOfRange
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedInput:
		return "malformed input"
	case UnsupportedProtocol:
		return "unsupported protocol"
	case ValueOutOfRange:
		return "value out of range"
	default:
		return fmt.Sprintf("unknown error kind (%d)", int(k))
	}
}

// ConvertError is the only error type returned by this package.
type ConvertError struct {
	Kind ErrorKind
	Msg  string
}

func (e *ConvertError) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// KindOf extracts the ErrorKind from err. The second result is false when
// err does not wrap a ConvertError.
func KindOf(err error) (ErrorKind, bool) {
	var ce *ConvertError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return 0, false
}

func malformed(format string, args ...any) *ConvertError {
	return &ConvertError{Kind: MalformedInput, Msg: fmt.Sprintf(format, args...)}
}

func unsupported(format string, args ...any) *ConvertError {
	return &ConvertError{Kind: UnsupportedProtocol, Msg: fmt.Sprintf(format, args...)}
}

func outOfRange(format string, args ...any) *ConvertError {
	return &ConvertError{Kind: ValueOutOfRange, Msg: fmt.Sprintf(format, args...)}
}

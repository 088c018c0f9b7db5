package pattern

import "fmt"

// ErrorKind enumerates the ways a pattern expression can be invalid.
type ErrorKind uint8

const (
	// ErrSyntax indicates a token that does not match the pattern grammar,
	// including numbers that are zero, negative or unparsable.
	ErrSyntax ErrorKind = iota + 1
	// ErrReversed indicates a range whose start exceeds its end.
	ErrReversed
	// ErrExclusiveEnd indicates an exclusive upper bound of 1 or less,
	// which cannot be converted to a valid inclusive bound.
	ErrExclusiveEnd
	// ErrOrder indicates a pattern list that is not given in ascending,
	// non-overlapping order.
	ErrOrder
)

// Error reports an invalid pattern token or pattern list.
// It always carries the offending token so the caller can show the user
// exactly what was rejected.
type Error struct {
	Kind  ErrorKind
	Token string
	Err   error // underlying parse error for ErrSyntax, may be nil
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ErrSyntax:
		if e.Err != nil {
			return fmt.Sprintf("could not interpret line pattern %q: %v", e.Token, e.Err)
		}
		return fmt.Sprintf("could not interpret line pattern %q: line numbers are 1-indexed", e.Token)
	case ErrReversed:
		return fmt.Sprintf("reversed pattern %q: start exceeds end", e.Token)
	case ErrExclusiveEnd:
		return fmt.Sprintf("exclusive end of pattern %q must be greater than 1", e.Token)
	case ErrOrder:
		return fmt.Sprintf("patterns must be given in order: %q starts before the previous range ends", e.Token)
	default:
		return fmt.Sprintf("invalid pattern %q (kind=%d)", e.Token, e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

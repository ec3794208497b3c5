// Package types defines the shared vocabulary of the module: the typed error
// taxonomy returned by every public package. Keeping it here lets callers
// handle failures from hex values, output accessors, and header decoding with
// one errors.Is vocabulary instead of per-package sentinels.
package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindValue    ErrKind = iota // text does not parse as signed hexadecimal
	ErrKindBounds                  // nibble/bit/character window outside the data
	ErrKindArgument                // argument outside the operation's domain
	ErrKindDivZero                 // zero divisor in division or remainder
	ErrKindRange                   // value does not fit the requested machine type
	ErrKindState                   // invalid operation for current state (e.g. released accessor)
	ErrKindFormat                  // malformed dump header (bad signature, short block)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidValue indicates text that does not form a signed hexadecimal value.
	ErrInvalidValue = &Error{Kind: ErrKindValue, Msg: "invalid hexadecimal value"}
	// ErrOutOfBounds indicates an index or window outside the addressed data.
	ErrOutOfBounds = &Error{Kind: ErrKindBounds, Msg: "index out of bounds"}
	// ErrInvalidArgument indicates an argument outside the operation's domain.
	ErrInvalidArgument = &Error{Kind: ErrKindArgument, Msg: "invalid argument"}
	// ErrDivideByZero indicates a division or remainder with a zero divisor.
	ErrDivideByZero = &Error{Kind: ErrKindDivZero, Msg: "division by zero"}
	// ErrRange indicates a value that does not fit the requested integer type.
	ErrRange = &Error{Kind: ErrKindRange, Msg: "value out of range"}
	// ErrReleased indicates an operation on an accessor after Close.
	ErrReleased = &Error{Kind: ErrKindState, Msg: "accessor is released"}
	// ErrNotHeader indicates the block lacks a valid dump header signature.
	ErrNotHeader = &Error{Kind: ErrKindFormat, Msg: "not a dump header (bad DR2 signature)"}
)

package streamid

import "errors"

// Kind is a stable category for programmatic error handling.
//
// Callers should branch on Kind rather than matching error strings.
// Use errors.As to extract *Error, or IsKind.
type Kind string

const (
	// KindInvalidCommitIDBytes: bytes decoded as a CommitID carry no commit information.
	KindInvalidCommitIDBytes Kind = "InvalidCommitIDBytes"
	// KindInvalidCommitIDString: a string does not denote a CommitID.
	KindInvalidCommitIDString Kind = "InvalidCommitIDString"
	// KindInvalidStreamIDBytes: bytes decoded as a StreamID contain commit data.
	KindInvalidStreamIDBytes Kind = "InvalidStreamIDBytes"
	// KindInvalidStreamIDString: a string does not denote a StreamID.
	KindInvalidStreamIDString Kind = "InvalidStreamIDString"
	// KindInvalidStreamRefBytes: bytes match neither accepted shape.
	KindInvalidStreamRefBytes Kind = "InvalidStreamRefBytes"
	// KindInvalidStreamRefString: a string matches neither accepted shape.
	KindInvalidStreamRefString Kind = "InvalidStreamRefString"
	// KindInvalidStreamRefCodec: bytes do not start with the stream id codec.
	KindInvalidStreamRefCodec  Kind = "InvalidStreamRefCodec"
	KindInvalidStreamTypeIndex Kind = "InvalidStreamTypeIndex"
	KindInvalidStreamTypeName  Kind = "InvalidStreamTypeName"

	// Errors forwarded from the primitives. Cause holds the original error.
	KindCID      Kind = "CID"
	KindVarint   Kind = "Varint"
	KindEncoding Kind = "Encoding"
)

// Error is the package's structured error type.
//
// Input is the offending string, or the offending bytes re-encoded as base36
// for diagnostics. Message is intended for humans; do not match on it.
type Error struct {
	Kind    Kind
	Input   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, input, msg string) error {
	return &Error{Kind: kind, Input: input, Message: msg}
}

func wrapError(kind Kind, input, msg string, cause error) error {
	if cause == nil {
		return newError(kind, input, msg)
	}
	return &Error{Kind: kind, Input: input, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) a *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// KindOf returns the Kind of a structured error, or "" if err is not one.
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}

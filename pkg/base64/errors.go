package base64

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the kind of every error returned by Encode and Decode.
var ErrInvalidInput = errors.New("base64: invalid input")

// InputError describes why an input was rejected. Offset and Char are only
// meaningful for character errors, where Offset is the byte offset of Char
// in the decoded text; otherwise Offset is -1.
type InputError struct {
	Reason string
	Offset int
	Char   byte
}

func (e *InputError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("base64: %s", e.Reason)
	}
	return fmt.Sprintf("base64: %s (%q at offset %d)", e.Reason, e.Char, e.Offset)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func newInputError(reason string) *InputError {
	return &InputError{Reason: reason, Offset: -1}
}

func newCharError(c byte, offset int) *InputError {
	return &InputError{Reason: "invalid character", Offset: offset, Char: c}
}

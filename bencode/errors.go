package bencode

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInteger       = errors.New("malformed integer")
	ErrMalformedLength        = errors.New("malformed byte string length")
	ErrTruncatedByteString    = errors.New("truncated byte string")
	ErrUnterminatedList       = errors.New("unterminated list")
	ErrUnterminatedDictionary = errors.New("unterminated dictionary")
	ErrUnrecognizedTag        = errors.New("unrecognized tag")
	ErrNestingTooDeep         = errors.New("nesting too deep")
	ErrNonStringDictKey       = errors.New("dictionary key is not a byte string")
	ErrTrailingData           = errors.New("trailing data after value")
)

// SyntaxError reports a grammar violation and the offset of the token
// that caused it.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bencode: %s at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxErr(offset int, err error) error {
	return &SyntaxError{Offset: offset, Err: err}
}

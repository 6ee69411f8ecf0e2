package torrentparser

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField          = errors.New("missing field")
	ErrWrongType             = errors.New("wrong type")
	ErrInvalidUTF8           = errors.New("invalid UTF-8 text")
	ErrInvalidPieceLength    = errors.New("piece length must be positive")
	ErrInvalidPiecesLength   = errors.New("pieces length is not a multiple of 20")
	ErrInvalidLength         = errors.New("length must not be negative")
	ErrConflictingFileLayout = errors.New("exactly one of length or files must be present")
)

// FieldError reports which field of the metainfo document failed
// validation. Field is a dotted path such as "info.files[2].path[0]".
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("torrentparser: %s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrLengthExceeded     = errors.New("length exceeded")
	ErrForeignKeyViolated = errors.New("foreign key violated")
	ErrReferenceMismatch  = errors.New("reference mismatch")
)

// LengthError reports a text attribute longer than its declared limit.
type LengthError struct {
	Entity string
	Field  string
	Limit  int
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s.%s: length %d exceeds limit %d", e.Entity, e.Field, e.Length, e.Limit)
}

func (e *LengthError) Is(target error) bool {
	return target == ErrLengthExceeded
}

// ForeignKeyError reports a write that breaks referential integrity.
type ForeignKeyError struct {
	Entity     string
	ForeignKey string
	References string
	Value      any
	Err        error
}

func (e *ForeignKeyError) Error() string {
	return fmt.Sprintf("%s.%s = %v: foreign key to %s violated", e.Entity, e.ForeignKey, e.Value, e.References)
}

func (e *ForeignKeyError) Is(target error) bool {
	return target == ErrForeignKeyViolated
}

func (e *ForeignKeyError) Unwrap() error {
	return e.Err
}

// ReferenceMismatchError reports a navigation reference that disagrees with its foreign key.
type ReferenceMismatchError struct {
	Entity string
	Field  string
	Want   any
	Got    any
}

func (e *ReferenceMismatchError) Error() string {
	return fmt.Sprintf("%s.%s references %v, foreign key is %v", e.Entity, e.Field, e.Got, e.Want)
}

func (e *ReferenceMismatchError) Is(target error) bool {
	return target == ErrReferenceMismatch
}

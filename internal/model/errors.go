package model

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. The struct types below match them and add context.
var (
	ErrValidation    = errors.New("invalid input")
	ErrDuplicateItem = errors.New("item already exists")
	ErrNotFound      = errors.New("item not found")
	ErrCorruptFile   = errors.New("inventory file is corrupt")
	ErrFormat        = errors.New("malformed import file")
)

// ValidationError reports a missing or invalid required input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DuplicateItemError is informational: the add was skipped, nothing changed.
type DuplicateItemError struct {
	Category string
	Item     string
}

func (e *DuplicateItemError) Error() string {
	return fmt.Sprintf("item %q already exists in %s; use update to change quantity", e.Item, e.Category)
}

func (e *DuplicateItemError) Is(target error) bool { return target == ErrDuplicateItem }

// NotFoundError reports an item missing from its category.
type NotFoundError struct {
	Category string
	Item     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %q not found in %s", e.Item, e.Category)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// CorruptFileError means the structured file exists but could not be parsed.
type CorruptFileError struct {
	Path string
	Err  error
}

func (e *CorruptFileError) Error() string {
	return fmt.Sprintf("corrupt inventory file %s: %v", e.Path, e.Err)
}

func (e *CorruptFileError) Is(target error) bool { return target == ErrCorruptFile }
func (e *CorruptFileError) Unwrap() error        { return e.Err }

// FormatError means a tabular import was rejected. Line is 1-based and
// counts the header; zero when the problem is not tied to a row.
type FormatError struct {
	Path   string
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s line %d: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

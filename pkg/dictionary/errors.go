package dictionary

import (
	"errors"
	"fmt"
)

// ErrInvalidDictionary matches every InvalidDictionaryError via errors.Is.
var ErrInvalidDictionary = errors.New("invalid dictionary")

// InvalidDictionaryError is returned when a dictionary's source cannot be
// opened or read.
type InvalidDictionaryError struct {
	Kind  Kind
	Key   string
	Cause error
}

func (e *InvalidDictionaryError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("failed to read %s dictionary %q into memory", e.Kind, e.Key)
	}
	return fmt.Sprintf("failed to read %s dictionary %q into memory: %v", e.Kind, e.Key, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *InvalidDictionaryError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidDictionary.
func (e *InvalidDictionaryError) Is(target error) bool {
	return target == ErrInvalidDictionary
}

// ValidationFailure describes why a selection of dictionaries cannot be used.
// It is a value meant for display, not a fatal error.
type ValidationFailure struct {
	Message string
	// Dictionary is the offending dictionary, if a single one is to blame.
	Dictionary *Dictionary
}

func (f *ValidationFailure) Error() string {
	return f.Message
}

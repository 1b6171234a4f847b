package dictionary

import "fmt"

// Entry is a dictionary in a user's selection together with whether it is
// used for generation.
type Entry struct {
	Dictionary *Dictionary
	Active     bool
}

// ValidateSelection returns nil if entries form a unique selection with at
// least one active dictionary and every dictionary is valid and non-empty.
// Otherwise it returns a failure explaining what should be changed.
func ValidateSelection(entries []Entry) *ValidationFailure {
	seen := make(map[*Dictionary]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Dictionary]; ok {
			return &ValidationFailure{Message: "Dictionaries must be unique.", Dictionary: e.Dictionary}
		}
		seen[e.Dictionary] = struct{}{}
	}

	if len(Active(entries)) == 0 {
		return &ValidationFailure{Message: "Select at least one dictionary."}
	}

	for _, e := range entries {
		if e.Dictionary == nil {
			return &ValidationFailure{Message: "Dictionary location must be set."}
		}
		if err := e.Dictionary.Validate(); err != nil {
			return &ValidationFailure{
				Message:    fmt.Sprintf("Dictionary `%s` is invalid: %v", e.Dictionary, err),
				Dictionary: e.Dictionary,
			}
		}

		words, err := e.Dictionary.Words()
		if err != nil {
			return &ValidationFailure{
				Message:    fmt.Sprintf("Dictionary `%s` is invalid: %v", e.Dictionary, err),
				Dictionary: e.Dictionary,
			}
		}
		if words.Len() == 0 {
			return &ValidationFailure{
				Message:    fmt.Sprintf("Dictionary `%s` is empty.", e.Dictionary),
				Dictionary: e.Dictionary,
			}
		}
	}

	return nil
}

// Active returns the dictionaries of the active entries, in order.
func Active(entries []Entry) []*Dictionary {
	var active []*Dictionary
	for _, e := range entries {
		if e.Active && e.Dictionary != nil {
			active = append(active, e.Dictionary)
		}
	}
	return active
}

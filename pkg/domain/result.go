package domain

// PromptResult is the outcome of asking one field: either a validated value
// or a request to navigate back. No invalid state is representable.
type PromptResult struct {
	back  bool
	value any
}

// Answer wraps a validated value.
func Answer(v any) PromptResult {
	return PromptResult{value: v}
}

// GoBack is the result returned when the user types the back command.
func GoBack() PromptResult {
	return PromptResult{back: true}
}

// IsBack reports whether the user asked to navigate back.
func (r PromptResult) IsBack() bool {
	return r.back
}

// Value returns the answered value. ok is false for a back signal.
func (r PromptResult) Value() (v any, ok bool) {
	if r.back {
		return nil, false
	}
	return r.value, true
}

package domain

// WorkflowValidation is the verdict of a workflow-level structural check.
type WorkflowValidation struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors,omitempty"`
}

// Valid is the passing verdict.
func Valid() WorkflowValidation {
	return WorkflowValidation{IsValid: true}
}

// Invalid builds a failing verdict from the given messages.
func Invalid(errs ...string) WorkflowValidation {
	return WorkflowValidation{IsValid: false, Errors: errs}
}

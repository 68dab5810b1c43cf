// Package schema validates individual field answers against their definitions.
//
// The validator is a pure function over a closed enumeration of field types: the
// same field and value always produce the same verdict, and nothing is retained
// between calls.
//
// Basic usage:
//
//	field := domain.FieldDefinition{
//	    ID:         "employeeCount",
//	    Type:       domain.FieldNumber,
//	    Validation: domain.FieldValidation{Required: true, Min: domain.Bound(1)},
//	}
//
//	if err := schema.ValidateField(field, 0.0); err != nil {
//	    fmt.Println(err) // Must be at least 1.
//	}
//
// Empty values (nil or the empty string) short-circuit every other check: they
// fail only when the field is required. A malformed pattern constraint is
// treated as no pattern at all.
//
// Numeric and display coercion follow loose scripting semantics (see Number and
// Display) so that answers typed at a terminal and values loaded from JSON or
// YAML documents compare the same way.
package schema

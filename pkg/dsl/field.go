package dsl

import "github.com/aretw0/workflow-tui/pkg/domain"

// FieldOption configures a field added with NodeBuilder.Field.
type FieldOption func(*domain.FieldDefinition)

// Required rejects empty answers.
func Required() FieldOption {
	return func(f *domain.FieldDefinition) {
		f.Validation.Required = true
	}
}

// Min sets the lower bound (characters for text, value for numbers).
func Min(v float64) FieldOption {
	return func(f *domain.FieldDefinition) {
		f.Validation.Min = domain.Bound(v)
	}
}

// Max sets the upper bound (characters for text, value for numbers).
func Max(v float64) FieldOption {
	return func(f *domain.FieldDefinition) {
		f.Validation.Max = domain.Bound(v)
	}
}

// Pattern sets a regular expression text answers must match.
func Pattern(re string) FieldOption {
	return func(f *domain.FieldDefinition) {
		f.Validation.Pattern = re
	}
}

// Options sets the choices from value/label pairs: Options("basic", "Basic", "pro", "Pro").
// A trailing value without label uses the value as label.
func Options(pairs ...string) FieldOption {
	return func(f *domain.FieldDefinition) {
		for i := 0; i < len(pairs); i += 2 {
			o := domain.Option{Value: pairs[i], Label: pairs[i]}
			if i+1 < len(pairs) {
				o.Label = pairs[i+1]
			}
			f.Options = append(f.Options, o)
		}
	}
}

// ReadOnly shows the collected value without prompting.
func ReadOnly() FieldOption {
	return func(f *domain.FieldDefinition) {
		f.ReadOnly = true
	}
}

// DateRange bounds a date field. Either side may be empty.
func DateRange(earliest, latest string) FieldOption {
	return func(f *domain.FieldDefinition) {
		f.MinDate = earliest
		f.MaxDate = latest
	}
}

// Currency sets the currency code of a currency field.
func Currency(code string) FieldOption {
	return func(f *domain.FieldDefinition) {
		f.Currency = code
	}
}

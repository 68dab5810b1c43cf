package domain

// FieldType is the closed enumeration governing parsing, validation and hints.
type FieldType string

const (
	FieldText          FieldType = "text"
	FieldTextarea      FieldType = "textarea"
	FieldEmail         FieldType = "email"
	FieldPhone         FieldType = "phone"
	FieldNumber        FieldType = "number"
	FieldCurrency      FieldType = "currency"
	FieldBoolean       FieldType = "boolean"
	FieldSelect        FieldType = "select"
	FieldRadio         FieldType = "radio"
	FieldDate          FieldType = "date"
	FieldCheckboxGroup FieldType = "checkboxGroup"
)

// FieldTypes lists every known field type in declaration order.
var FieldTypes = []FieldType{
	FieldText, FieldTextarea, FieldEmail, FieldPhone,
	FieldNumber, FieldCurrency, FieldBoolean,
	FieldSelect, FieldRadio, FieldDate, FieldCheckboxGroup,
}

// Known reports whether t belongs to the enumeration.
func (t FieldType) Known() bool {
	for _, ft := range FieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// IsTextLike reports whether values of this type are free text.
func (t FieldType) IsTextLike() bool {
	switch t {
	case FieldText, FieldTextarea, FieldEmail, FieldPhone:
		return true
	}
	return false
}

// IsNumeric reports whether values of this type are numbers.
func (t FieldType) IsNumeric() bool {
	return t == FieldNumber || t == FieldCurrency
}

// HasOptions reports whether the type draws its values from an option list.
func (t FieldType) HasOptions() bool {
	switch t {
	case FieldSelect, FieldRadio, FieldCheckboxGroup:
		return true
	}
	return false
}

// Option is one choice of a select, radio or checkboxGroup field.
type Option struct {
	Value string `json:"value" yaml:"value" mapstructure:"value"`
	Label string `json:"label" yaml:"label" mapstructure:"label"`
}

// FieldValidation holds the constraints applied to a field value.
// Min and Max are character lengths for text-like types and numeric bounds for numbers.
type FieldValidation struct {
	Required bool     `json:"required,omitempty" yaml:"required,omitempty" mapstructure:"required"`
	Min      *float64 `json:"min,omitempty" yaml:"min,omitempty" mapstructure:"min"`
	Max      *float64 `json:"max,omitempty" yaml:"max,omitempty" mapstructure:"max"`
	Pattern  string   `json:"pattern,omitempty" yaml:"pattern,omitempty" mapstructure:"pattern"`
}

// FieldDefinition describes one question asked by a question node.
type FieldDefinition struct {
	ID         string          `json:"id" yaml:"id" mapstructure:"id"`
	Type       FieldType       `json:"type" yaml:"type" mapstructure:"type"`
	Label      string          `json:"label" yaml:"label" mapstructure:"label"`
	Validation FieldValidation `json:"validation" yaml:"validation" mapstructure:"validation"`

	Options  []Option `json:"options,omitempty" yaml:"options,omitempty" mapstructure:"options"`
	MinDate  string   `json:"minDate,omitempty" yaml:"minDate,omitempty" mapstructure:"minDate"`
	MaxDate  string   `json:"maxDate,omitempty" yaml:"maxDate,omitempty" mapstructure:"maxDate"`
	Currency string   `json:"currency,omitempty" yaml:"currency,omitempty" mapstructure:"currency"`

	// ReadOnly fields are displayed for context but never prompted or validated.
	ReadOnly bool `json:"readOnly,omitempty" yaml:"readOnly,omitempty" mapstructure:"readOnly"`
}

// OptionValues returns the declared option values in order.
func (f FieldDefinition) OptionValues() []string {
	values := make([]string, len(f.Options))
	for i, o := range f.Options {
		values[i] = o.Value
	}
	return values
}

// Bound is a small helper for building validation constraints in code.
func Bound(v float64) *float64 {
	return &v
}

package runner

import "github.com/aretw0/workflow-tui/pkg/domain"

// typeHints tells the user what format to enter for each field type.
var typeHints = map[domain.FieldType]string{
	domain.FieldText:          "(text)",
	domain.FieldTextarea:      "(text)",
	domain.FieldEmail:         "(email)",
	domain.FieldPhone:         "(phone)",
	domain.FieldNumber:        "(number)",
	domain.FieldCurrency:      "(number, $ optional e.g. 50000 or $50,000)",
	domain.FieldBoolean:       "(y/n)",
	domain.FieldSelect:        "(number or value)",
	domain.FieldRadio:         "(number or value)",
	domain.FieldDate:          "(YYYY-MM-DD)",
	domain.FieldCheckboxGroup: "(comma-separated values)",
}

// TypeHint returns the short format hint for t, or "" for unknown types.
func TypeHint(t domain.FieldType) string {
	return typeHints[t]
}

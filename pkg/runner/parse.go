package runner

import (
	"strconv"
	"strings"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/schema"
)

var (
	affirmative = map[string]bool{"y": true, "yes": true, "true": true, "1": true}
	negative    = map[string]bool{"n": true, "no": true, "false": true, "0": true}

	currencySymbols = strings.NewReplacer("$", "", ",", "")
)

// ParseInput converts a trimmed line of text into the typed candidate value for field.
// An empty line with an existing value returns that value unchanged.
// The result is not validated; conversions that fail yield values the validator rejects
// (NaN for numbers, nil for booleans, the raw text for unmatched choices).
func ParseInput(field domain.FieldDefinition, raw string, existing any) any {
	if raw == "" && existing != nil {
		return existing
	}

	switch field.Type {
	case domain.FieldText, domain.FieldTextarea, domain.FieldEmail, domain.FieldPhone:
		return raw
	case domain.FieldNumber:
		return parseNumber(raw)
	case domain.FieldCurrency:
		return parseNumber(currencySymbols.Replace(raw))
	case domain.FieldBoolean:
		return parseBoolean(raw)
	case domain.FieldSelect, domain.FieldRadio:
		return resolveOption(field.Options, raw)
	case domain.FieldDate:
		return raw
	case domain.FieldCheckboxGroup:
		return splitList(raw)
	default:
		return raw
	}
}

func parseNumber(s string) any {
	if s == "" {
		return nil
	}
	return schema.Number(s)
}

func parseBoolean(raw string) any {
	lower := strings.ToLower(raw)
	switch {
	case affirmative[lower]:
		return true
	case negative[lower]:
		return false
	}
	return nil
}

// resolveOption maps a 1-based index, an option value or an option label
// (case-insensitive) to the option value. Unmatched text is returned as-is.
func resolveOption(opts []domain.Option, raw string) any {
	if isDigits(raw) {
		if i, err := strconv.Atoi(raw); err == nil && i >= 1 && i <= len(opts) {
			return opts[i-1].Value
		}
	}
	lower := strings.ToLower(raw)
	for _, o := range opts {
		if o.Value == raw || strings.ToLower(o.Label) == lower {
			return o.Value
		}
	}
	return raw
}

func splitList(raw string) []string {
	items := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package schema

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/dlclark/regexp2"

	"github.com/aretw0/workflow-tui/pkg/domain"
)

// patternTimeout bounds a single pattern match against backtracking blowups.
const patternTimeout = time.Second

// checker validates a non-empty value for one field type.
type checker func(field domain.FieldDefinition, value any) error

// checkers is the lookup table over the closed field type enumeration.
// Types absent from the table always validate.
var checkers = map[domain.FieldType]checker{
	domain.FieldText:          checkText,
	domain.FieldTextarea:      checkText,
	domain.FieldEmail:         checkText,
	domain.FieldPhone:         checkText,
	domain.FieldNumber:        checkNumber,
	domain.FieldCurrency:      checkNumber,
	domain.FieldBoolean:       checkBoolean,
	domain.FieldSelect:        checkChoice,
	domain.FieldRadio:         checkChoice,
	domain.FieldCheckboxGroup: checkCheckboxGroup,
	domain.FieldDate:          checkDate,
}

// ValidateField checks value against the field's type and constraints.
// It returns a *FieldError describing the first failure, or nil.
func ValidateField(field domain.FieldDefinition, value any) error {
	if IsEmpty(value) {
		if field.Validation.Required {
			return fail(field.ID, value, MsgRequired)
		}
		return nil
	}

	check, ok := checkers[field.Type]
	if !ok {
		return nil
	}
	return check(field, value)
}

func checkText(field domain.FieldDefinition, value any) error {
	v := field.Validation
	s := strings.TrimSpace(Display(value))
	n := float64(textLength(s))

	if v.Required && n == 0 {
		return fail(field.ID, value, MsgRequired)
	}
	if v.Min != nil && n < *v.Min {
		return failf(field.ID, value, "Must be at least %s characters.", formatNumber(*v.Min))
	}
	if v.Max != nil && n > *v.Max {
		return failf(field.ID, value, "Must be at most %s characters.", formatNumber(*v.Max))
	}
	if v.Pattern != "" {
		if !matchPattern(v.Pattern, s) {
			return fail(field.ID, value, MsgInvalidFormat)
		}
	}
	return nil
}

// textLength counts UTF-16 code units, so characters outside the Basic
// Multilingual Plane (most emoji) count as two.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

// matchPattern reports whether s matches an ECMAScript pattern. A pattern
// that does not compile is treated as no pattern. A match that times out
// counts as a mismatch.
func matchPattern(pattern, s string) bool {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return true
	}
	re.MatchTimeout = patternTimeout
	ok, err := re.MatchString(s)
	return err == nil && ok
}

func checkNumber(field domain.FieldDefinition, value any) error {
	v := field.Validation
	n := ToNumber(value)

	if math.IsNaN(n) {
		return fail(field.ID, value, MsgInvalidNumber)
	}
	if v.Min != nil && n < *v.Min {
		return failf(field.ID, value, "Must be at least %s.", formatNumber(*v.Min))
	}
	if v.Max != nil && n > *v.Max {
		return failf(field.ID, value, "Must be at most %s.", formatNumber(*v.Max))
	}
	return nil
}

func checkBoolean(field domain.FieldDefinition, value any) error {
	if _, ok := value.(bool); !ok {
		return fail(field.ID, value, MsgYesNo)
	}
	return nil
}

func checkChoice(field domain.FieldDefinition, value any) error {
	opts := field.OptionValues()
	if !contains(opts, Display(value)) {
		return failf(field.ID, value, "Choose one of: %s", strings.Join(opts, ", "))
	}
	return nil
}

func checkCheckboxGroup(field domain.FieldDefinition, value any) error {
	items, ok := asSequence(value)
	if !ok {
		return fail(field.ID, value, MsgSelectSome)
	}
	opts := field.OptionValues()
	for _, item := range items {
		if s := Display(item); !contains(opts, s) {
			return failf(field.ID, value, "Invalid option: %s", s)
		}
	}
	return nil
}

// checkDate accepts any recognisable calendar date, then compares the raw
// text against the bounds lexicographically. The comparison orders correctly
// only for zero-padded YYYY-MM-DD strings.
func checkDate(field domain.FieldDefinition, value any) error {
	d := Display(value)
	if !IsDate(d) {
		return fail(field.ID, value, MsgInvalidDate)
	}
	if field.MinDate != "" && d < field.MinDate {
		return failf(field.ID, value, "Date must be on or after %s.", field.MinDate)
	}
	if field.MaxDate != "" && d > field.MaxDate {
		return failf(field.ID, value, "Date must be on or before %s.", field.MaxDate)
	}
	return nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01",
	"2006",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// IsDate reports whether s parses as a calendar date in one of the accepted layouts.
func IsDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return isLooseDate(s)
}

// isLooseDate accepts Y-M-D with unpadded parts and days up to 31 in any
// month. Such dates roll over ("2024-02-30" is March 1st).
func isLooseDate(s string) bool {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 {
		return false
	}
	bounds := [3][2]int{{0, 9999}, {1, 12}, {1, 31}}
	for i, p := range parts {
		if p == "" || len(p) > 4 || (i > 0 && len(p) > 2) {
			return false
		}
		n, err := strconv.Atoi(p)
		if err != nil || p[0] == '+' || p[0] == '-' || n < bounds[i][0] || n > bounds[i][1] {
			return false
		}
	}
	return true
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

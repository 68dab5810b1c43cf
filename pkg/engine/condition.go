package engine

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/spf13/cast"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/schema"
)

// Condition operators understood by Evaluate.
const (
	OpEq        = "eq"
	OpNeq       = "neq"
	OpGt        = "gt"
	OpGte       = "gte"
	OpLt        = "lt"
	OpLte       = "lte"
	OpIn        = "in"
	OpNotIn     = "notIn"
	OpContains  = "contains"
	OpExists    = "exists"
	OpNotExists = "notExists"
)

// ErrUnknownOperator is returned by Evaluate for operators outside the built-in set.
var ErrUnknownOperator = errors.New("unknown operator")

var operators = map[string]func(actual any, present bool, expected any) (bool, error){
	OpEq:  func(a any, _ bool, b any) (bool, error) { return looseEqual(a, b), nil },
	OpNeq: func(a any, _ bool, b any) (bool, error) { return !looseEqual(a, b), nil },
	OpGt:  compare(func(a, b float64) bool { return a > b }),
	OpGte: compare(func(a, b float64) bool { return a >= b }),
	OpLt:  compare(func(a, b float64) bool { return a < b }),
	OpLte: compare(func(a, b float64) bool { return a <= b }),
	OpIn: func(a any, _ bool, b any) (bool, error) {
		return memberOf(a, b)
	},
	OpNotIn: func(a any, _ bool, b any) (bool, error) {
		ok, err := memberOf(a, b)
		return !ok && err == nil, err
	},
	OpContains: func(a any, _ bool, b any) (bool, error) {
		return containsValue(a, b), nil
	},
	OpExists: func(a any, present bool, _ any) (bool, error) {
		return present && !schema.IsEmpty(a), nil
	},
	OpNotExists: func(a any, present bool, _ any) (bool, error) {
		return !present || schema.IsEmpty(a), nil
	},
}

// KnownOperator reports whether op is part of the built-in set.
func KnownOperator(op string) bool {
	_, ok := operators[op]
	return ok
}

// Evaluate is the default ConditionEvaluator.
func Evaluate(cond domain.Condition, data *domain.Data) (bool, error) {
	op, ok := operators[cond.Operator]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownOperator, cond.Operator)
	}
	actual, present := data.Get(cond.FieldID)
	return op(actual, present, cond.Value)
}

// looseEqual compares collected values with document literals, which may
// differ in representation (50000 vs "50000", true vs "true").
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if bb, ok := b.(bool); ok {
		ab, err := cast.ToBoolE(a)
		return err == nil && ab == bb
	}
	if isNumeric(a) || isNumeric(b) {
		fa, fb := schema.ToNumber(a), schema.ToNumber(b)
		if !math.IsNaN(fa) && !math.IsNaN(fb) {
			return fa == fb
		}
	}
	return schema.Display(a) == schema.Display(b)
}

func compare(cmp func(a, b float64) bool) func(any, bool, any) (bool, error) {
	return func(a any, present bool, b any) (bool, error) {
		if !present || schema.IsEmpty(a) {
			return false, nil
		}
		fa, fb := schema.ToNumber(a), schema.ToNumber(b)
		if math.IsNaN(fa) || math.IsNaN(fb) {
			return false, nil
		}
		return cmp(fa, fb), nil
	}
}

func memberOf(a, list any) (bool, error) {
	var items []any
	switch v := list.(type) {
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	default:
		var err error
		if items, err = cast.ToSliceE(list); err != nil {
			return false, fmt.Errorf("expected a list, got %T", list)
		}
	}
	return slices.ContainsFunc(items, func(item any) bool { return looseEqual(a, item) }), nil
}

// containsValue reports whether a collected list holds b, or a collected string has b as a substring.
func containsValue(a, b any) bool {
	switch v := a.(type) {
	case nil:
		return false
	case string:
		return strings.Contains(v, schema.Display(b))
	}
	items, err := cast.ToStringSliceE(a)
	if err != nil {
		return false
	}
	return slices.Contains(items, schema.Display(b))
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	}
	return false
}

package runner

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/ports"
	"github.com/aretw0/workflow-tui/pkg/schema"
)

// BackCommand is the reserved word (case-insensitive) that navigates to the previous node.
const BackCommand = "back"

// PromptOption configures a single PromptField call.
type PromptOption func(*promptConfig)

type promptConfig struct {
	onRejected func(*schema.FieldError)
}

// WithRejectionHook is called for every answer the validator rejects.
func WithRejectionHook(fn func(*schema.FieldError)) PromptOption {
	return func(c *promptConfig) {
		c.onRejected = fn
	}
}

// PromptText builds the prompt line "<label> <hint>[ [default]]: ".
func PromptText(field domain.FieldDefinition, existing any) string {
	defaultHint := ""
	if !schema.IsEmpty(existing) {
		defaultHint = fmt.Sprintf(" [%s]", schema.Display(existing))
	}
	return fmt.Sprintf("%s %s%s: ", field.Label, TypeHint(field.Type), defaultHint)
}

// PromptField asks for one field until the answer validates or the user types "back".
// A previously collected value is offered as the default and reused verbatim on an empty line.
// There is no retry limit. The only errors returned come from the line reader
// (io.EOF when input is closed, or the context error).
func PromptField(
	ctx context.Context,
	in ports.LineReader,
	view View,
	field domain.FieldDefinition,
	data *domain.Data,
	opts ...PromptOption,
) (domain.PromptResult, error) {
	cfg := promptConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	existing, _ := data.Get(field.ID)
	hasDefault := !schema.IsEmpty(existing)
	label := PromptText(field, existing)

	for {
		raw, err := in.ReadLine(ctx, label)
		if err != nil {
			return domain.PromptResult{}, err
		}
		if strings.EqualFold(raw, BackCommand) {
			return domain.GoBack(), nil
		}

		var candidate any
		if raw == "" && hasDefault {
			candidate = existing
		} else {
			candidate = ParseInput(field, raw, existing)
		}

		if err := schema.ValidateField(field, candidate); err != nil {
			fe, ok := schema.AsFieldError(err)
			if !ok {
				fe = &schema.FieldError{FieldID: field.ID, Message: err.Error(), Value: candidate}
			}
			if cfg.onRejected != nil {
				cfg.onRejected(fe)
			}
			view.FieldError(field, fe)
			continue
		}
		return domain.Answer(candidate), nil
	}
}

package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEvents(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var events []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		var e map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &e), line)
		events = append(events, e)
	}
	return events
}

func TestJSONHandler_ReadLine(t *testing.T) {
	var out bytes.Buffer
	h := NewJSONHandler(strings.NewReader("\"  y \"\nplain text\n"), &out)
	ctx := context.Background()

	line, err := h.ReadLine(ctx, "Employees? (y/n): ")
	require.NoError(t, err)
	assert.Equal(t, "y", line)

	line, err = h.ReadLine(ctx, "Name (text): ")
	require.NoError(t, err)
	assert.Equal(t, "plain text", line)

	events := decodeEvents(t, out.String())
	require.Len(t, events, 2)
	assert.Equal(t, EventPrompt, events[0]["type"])
	assert.Equal(t, "Employees? (y/n): ", events[0]["text"])

	require.NoError(t, h.Close())
	_, err = h.ReadLine(ctx, "")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestJSONHandler_ReadLine_RejectedInputRepeatsPrompt(t *testing.T) {
	var out bytes.Buffer
	h := NewJSONHandler(strings.NewReader("\xff\xfe\nyes\n"), &out)

	line, err := h.ReadLine(context.Background(), "Employees? (y/n): ")
	require.NoError(t, err)
	assert.Equal(t, "yes", line)

	events := decodeEvents(t, out.String())
	require.Len(t, events, 3)
	assert.Equal(t, EventPrompt, events[0]["type"])
	assert.Equal(t, EventInputError, events[1]["type"])
	assert.Equal(t, ErrInvalidUTF8.Error(), events[1]["text"])
	assert.Equal(t, EventPrompt, events[2]["type"])
}

func TestJSONHandler_ReadLine_OversizedInput(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "8")
	var out bytes.Buffer
	h := NewJSONHandler(strings.NewReader("\"far too long\"\nshort\n"), &out)

	line, err := h.ReadLine(context.Background(), "Name (text): ")
	require.NoError(t, err)
	assert.Equal(t, "short", line)

	events := decodeEvents(t, out.String())
	require.Len(t, events, 3)
	assert.Equal(t, EventInputError, events[1]["type"])
	assert.Contains(t, events[1]["text"], ErrInputTooLarge.Error())
}

func TestJSONView(t *testing.T) {
	var out bytes.Buffer
	v := NewJSONView(&out)
	wf := businessWorkflow()
	field := wf.Nodes["business-info"].Fields[0]

	v.Intro(wf.Meta)
	v.NodeHeader(wf.Nodes["business-info"])
	v.FieldError(field, &schema.FieldError{FieldID: field.ID, Message: schema.MsgYesNo, Value: "maybe"})
	v.Advance()
	v.BackTo("business-info")
	v.Summary(wf, domain.DataFrom("hasEmployees", true, "annualRevenue", 50000.0))

	events := decodeEvents(t, out.String())
	require.Len(t, events, 5)
	assert.Equal(t, EventIntro, events[0]["type"])
	assert.Equal(t, "Commercial GL", events[0]["workflow"].(map[string]any)["name"])
	assert.Equal(t, "business-info", events[1]["nodeId"])
	assert.Equal(t, schema.MsgYesNo, events[2]["text"])
	assert.Equal(t, EventBack, events[3]["type"])
	assert.Equal(t, map[string]any{"hasEmployees": true, "annualRevenue": 50000.0}, events[4]["data"])
}

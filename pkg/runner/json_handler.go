package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/schema"
)

// Event types emitted in JSON mode, one object per line.
const (
	EventIntro          = "intro"
	EventNode           = "node"
	EventPrompt         = "prompt"
	EventReadOnly       = "read_only"
	EventOptions        = "options"
	EventFieldError     = "field_error"
	EventInputError     = "input_error"
	EventAlreadyAtStart = "already_at_start"
	EventBack           = "back"
	EventSummary        = "summary"
)

// Event is a single JSON-Lines record written by JSONHandler and JSONView.
type Event struct {
	Type     string          `json:"type"`
	NodeID   string          `json:"nodeId,omitempty"`
	FieldID  string          `json:"fieldId,omitempty"`
	Label    string          `json:"label,omitempty"`
	Text     string          `json:"text,omitempty"`
	Value    any             `json:"value,omitempty"`
	Options  []domain.Option `json:"options,omitempty"`
	Workflow *domain.Meta    `json:"workflow,omitempty"`
	Data     *domain.Data    `json:"data,omitempty"`
}

// JSONHandler implements ports.LineReader for structured JSON-Lines communication.
// Each prompt is announced as a "prompt" event; the answer may be a JSON string or raw text.
type JSONHandler struct {
	Reader  *bufio.Reader
	Encoder *json.Encoder

	closed bool
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Encoder: json.NewEncoder(w),
	}
}

// ReadLine announces the prompt and blocks for one answer line.
// A line rejected by SanitizeInput is reported as an "input_error" event and the prompt repeats.
func (h *JSONHandler) ReadLine(ctx context.Context, prompt string) (string, error) {
	for {
		if h.closed {
			return "", ErrInputClosed
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := h.Encoder.Encode(Event{Type: EventPrompt, Text: prompt}); err != nil {
			return "", err
		}

		text, err := h.Reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return "", err
		}
		text = strings.TrimSpace(text)

		// Try to unquote if it's a JSON string
		var val string
		if err := json.Unmarshal([]byte(text), &val); err == nil {
			text = strings.TrimSpace(val)
		}

		clean, serr := SanitizeInput(text)
		if serr != nil {
			if err := h.Encoder.Encode(Event{Type: EventInputError, Text: serr.Error()}); err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

func (h *JSONHandler) Close() error {
	h.closed = true
	return nil
}

// JSONView implements View by emitting one Event per line.
// Encoding errors are dropped; the following ReadLine surfaces a broken writer.
type JSONView struct {
	Encoder *json.Encoder
}

// NewJSONView creates a view writing JSON-Lines to w (os.Stdout when nil).
func NewJSONView(w io.Writer) *JSONView {
	if w == nil {
		w = os.Stdout
	}
	return &JSONView{Encoder: json.NewEncoder(w)}
}

func (v *JSONView) emit(e Event) {
	_ = v.Encoder.Encode(e)
}

func (v *JSONView) Intro(meta domain.Meta) {
	v.emit(Event{Type: EventIntro, Workflow: &meta})
}

func (v *JSONView) NodeHeader(node domain.Node) {
	v.emit(Event{Type: EventNode, NodeID: node.ID, Label: node.Label, Text: node.Description})
}

func (v *JSONView) ReadOnlyField(field domain.FieldDefinition, value any, present bool) {
	v.emit(Event{Type: EventReadOnly, FieldID: field.ID, Label: field.Label, Text: displayOrMissing(value, present), Value: value})
}

func (v *JSONView) Options(field domain.FieldDefinition) {
	v.emit(Event{Type: EventOptions, FieldID: field.ID, Label: field.Label, Options: field.Options})
}

func (v *JSONView) FieldError(field domain.FieldDefinition, err *schema.FieldError) {
	v.emit(Event{Type: EventFieldError, FieldID: field.ID, Text: err.Message, Value: err.Value})
}

func (v *JSONView) AlreadyAtStart() {
	v.emit(Event{Type: EventAlreadyAtStart})
}

func (v *JSONView) BackTo(nodeID string) {
	v.emit(Event{Type: EventBack, NodeID: nodeID})
}

func (v *JSONView) Advance() {}

func (v *JSONView) Summary(wf *domain.Workflow, data *domain.Data) {
	meta := wf.Meta
	if data == nil {
		data = domain.NewData()
	}
	v.emit(Event{Type: EventSummary, Workflow: &meta, Data: data})
}

package domain

// History is the stack of visited node ids.
// The entry node is always at the bottom and is never popped.
type History struct {
	ids []string
}

// NewHistory starts a history at the entry node.
func NewHistory(entryNodeID string) *History {
	return &History{ids: []string{entryNodeID}}
}

// Current returns the node on top of the stack.
func (h *History) Current() string {
	return h.ids[len(h.ids)-1]
}

// Push records a newly visited node.
func (h *History) Push(nodeID string) {
	h.ids = append(h.ids, nodeID)
}

// Back pops the current node and reports whether it did.
// At the entry node it is a no-op and returns false.
func (h *History) Back() bool {
	if len(h.ids) <= 1 {
		return false
	}
	h.ids = h.ids[:len(h.ids)-1]
	return true
}

// Len returns the stack depth (always >= 1).
func (h *History) Len() int {
	return len(h.ids)
}

// IDs returns a copy of the stack, bottom first.
func (h *History) IDs() []string {
	out := make([]string, len(h.ids))
	copy(out, h.ids)
	return out
}

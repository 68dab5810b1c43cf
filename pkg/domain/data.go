package domain

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Data maps field ids to validated values, preserving first-insertion order.
// Re-answering a field after going back overwrites its value in place.
type Data struct {
	values *orderedmap.OrderedMap[string, any]
}

// NewData creates an empty collection.
func NewData() *Data {
	return &Data{values: orderedmap.New[string, any]()}
}

// DataFrom seeds a collection from pairs of id and value, in argument order.
func DataFrom(pairs ...any) *Data {
	d := NewData()
	for i := 0; i+1 < len(pairs); i += 2 {
		if id, ok := pairs[i].(string); ok {
			d.Set(id, pairs[i+1])
		}
	}
	return d
}

// Get returns the value stored for id.
func (d *Data) Get(id string) (any, bool) {
	if d == nil || d.values == nil {
		return nil, false
	}
	return d.values.Get(id)
}

// Set stores v under id.
func (d *Data) Set(id string, v any) {
	if d.values == nil {
		d.values = orderedmap.New[string, any]()
	}
	d.values.Set(id, v)
}

// Len returns the number of collected fields.
func (d *Data) Len() int {
	if d == nil || d.values == nil {
		return 0
	}
	return d.values.Len()
}

// Keys returns the field ids in insertion order.
func (d *Data) Keys() []string {
	keys := make([]string, 0, d.Len())
	d.Each(func(id string, _ any) {
		keys = append(keys, id)
	})
	return keys
}

// Each calls fn for every entry in insertion order.
func (d *Data) Each(fn func(id string, v any)) {
	if d == nil || d.values == nil {
		return
	}
	for pair := d.values.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Map returns an unordered copy, convenient for assertions and template contexts.
func (d *Data) Map() map[string]any {
	out := make(map[string]any, d.Len())
	d.Each(func(id string, v any) {
		out[id] = v
	})
	return out
}

// MarshalJSON encodes the collection as a JSON object in insertion order.
func (d *Data) MarshalJSON() ([]byte, error) {
	if d == nil || d.values == nil {
		return []byte("{}"), nil
	}
	return d.values.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the document.
// Numbers decode as float64.
func (d *Data) UnmarshalJSON(b []byte) error {
	values := orderedmap.New[string, any]()
	if err := values.UnmarshalJSON(b); err != nil {
		return err
	}
	d.values = values
	return nil
}

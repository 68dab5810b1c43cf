package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestData_InsertionOrder(t *testing.T) {
	d := NewData()
	d.Set("zeta", 1.0)
	d.Set("alpha", true)
	d.Set("mid", "x")

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, d.Keys())

	// Overwriting keeps the original position.
	d.Set("zeta", 2.0)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, d.Keys())
	v, ok := d.Get("zeta")
	require.True(t, ok)
	assert.Equal(t, 2.0, v)
}

func TestData_MarshalJSON(t *testing.T) {
	d := DataFrom("hasEmployees", true, "annualRevenue", 50000.0)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hasEmployees":true,"annualRevenue":50000}`, string(raw))
	assert.Less(t, strings.Index(string(raw), "hasEmployees"), strings.Index(string(raw), "annualRevenue"))
}

func TestData_NilSafe(t *testing.T) {
	var d *Data
	_, ok := d.Get("x")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Keys())
}

func TestData_UnmarshalJSON(t *testing.T) {
	var d Data
	require.NoError(t, json.Unmarshal([]byte(`{"b":1,"a":"x","c":[true]}`), &d))

	assert.Equal(t, []string{"b", "a", "c"}, d.Keys())
	v, _ := d.Get("b")
	assert.Equal(t, 1.0, v)

	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &d))
}

package dsl

import (
	"context"
	"testing"

	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	b := New(domain.Meta{ID: "gl", Name: "GL", Version: "1.0.0"})

	b.Add("business-info").
		Question("Business information").
		Describe("Tell us about the business").
		Field("hasEmployees", domain.FieldBoolean, "Do you have employees?", Required()).
		Field("annualRevenue", domain.FieldCurrency, "Annual revenue", Required(), Min(0), Currency("USD")).
		When("hasEmployees", "eq", true, "employee-details").
		Go("complete")

	b.Add("employee-details").
		Question("Employees").
		Field("plan", domain.FieldSelect, "Plan", Options("basic", "Basic", "standard", "Standard", "gold")).
		Go("complete")

	b.Add("complete").End("complete")

	wf, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, "business-info", wf.EntryNodeID)
	assert.Len(t, wf.Nodes, 3)

	start := wf.Nodes["business-info"]
	assert.Equal(t, domain.NodeTypeQuestion, start.Type)
	assert.Equal(t, "Tell us about the business", start.Description)
	require.Len(t, start.Fields, 2)
	assert.True(t, start.Fields[0].Validation.Required)
	assert.Equal(t, 0.0, *start.Fields[1].Validation.Min)
	assert.Equal(t, "USD", start.Fields[1].Currency)
	require.Len(t, start.ConditionalEdges, 1)
	assert.Equal(t, "employee-details", start.ConditionalEdges[0].TargetNodeID)
	assert.Equal(t, true, start.ConditionalEdges[0].Condition.Value)
	assert.Equal(t, "complete", start.DefaultEdge)

	plan := wf.Nodes["employee-details"].Fields[0]
	assert.Equal(t, []domain.Option{
		{Value: "basic", Label: "Basic"},
		{Value: "standard", Label: "Standard"},
		{Value: "gold", Label: "gold"},
	}, plan.Options)

	end := wf.Nodes["complete"]
	assert.Equal(t, domain.NodeTypeEnd, end.Type)
	assert.Equal(t, "complete", end.Status)
}

func TestBuilder_Add_ReturnsExisting(t *testing.T) {
	b := New(domain.Meta{ID: "x"})
	b.Add("a").Question("A")
	b.Add("a").Field("f", domain.FieldText, "F").Go("b")
	b.Add("b").End("done")

	wf, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "A", wf.Nodes["a"].Label)
	assert.Len(t, wf.Nodes["a"].Fields, 1)
}

func TestBuilder_Errors(t *testing.T) {
	_, err := New(domain.Meta{}).Build()
	assert.Error(t, err)

	b := New(domain.Meta{})
	b.Add("a").End("done")
	b.Entry("ghost")
	_, err = b.Build()
	assert.ErrorContains(t, err, "ghost")

	dup := New(domain.Meta{})
	dup.Add("a").Question("A").
		Field("f", domain.FieldText, "F").
		Field("f", domain.FieldText, "F again")
	_, err = dup.Build()
	assert.ErrorContains(t, err, "duplicate field f")
}

func TestBuilder_Loader(t *testing.T) {
	b := New(domain.Meta{ID: "x", Name: "X"})
	b.Add("a").Question("A").Field("f", domain.FieldText, "F", ReadOnly()).Go("b")
	b.Add("b").End("done")

	loader, err := b.Loader()
	require.NoError(t, err)

	wf, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, wf.Nodes["a"].Fields[0].ReadOnly)
}

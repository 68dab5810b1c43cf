/*
Package dsl provides a Go DSL (Domain Specific Language) for programmatically constructing workflows.

It allows developers to define question flows using a type-safe, fluent builder pattern
instead of relying on external YAML or JSON files. This is particularly useful for unit
testing, embedding a workflow in a binary, and leveraging IDE autocompletion/type-checking.

Example usage:

	package main

	import (
		"github.com/aretw0/workflow-tui/pkg/domain"
		"github.com/aretw0/workflow-tui/pkg/dsl"
	)

	func main() {
		b := dsl.New(domain.Meta{ID: "gl", Name: "Commercial GL", Version: "1.0.0"})

		b.Add("business-info").
			Question("Business information").
			Field("hasEmployees", domain.FieldBoolean, "Do you have employees?", dsl.Required()).
			When("hasEmployees", "eq", true, "employee-details").
			Go("complete")

		b.Add("employee-details").
			Question("Employees").
			Field("employeeCount", domain.FieldNumber, "How many?", dsl.Required(), dsl.Min(1)).
			Go("complete")

		b.Add("complete").End("complete")

		wf, err := b.Build()
		// ... pass wf to runner.NewRunner(engine.New()).Run(ctx, wf)
	}

The first node added is the entry node unless Entry is called.
*/
package dsl

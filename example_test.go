package workflowtui_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aretw0/workflow-tui"
	"github.com/aretw0/workflow-tui/pkg/domain"
	"github.com/aretw0/workflow-tui/pkg/dsl"
	"github.com/aretw0/workflow-tui/pkg/runner"
)

// ExampleNew_library demonstrates how to use the client purely as a Go library,
// building the workflow in code and scripting the answers.
func ExampleNew_library() {
	// 1. Define the workflow with the builder
	b := dsl.New(domain.Meta{ID: "gl", Name: "Commercial GL", Version: "1.0.0"})
	b.Add("business").Question("Business info").
		Field("hasEmployees", domain.FieldBoolean, "Do you have employees?", dsl.Required()).
		Field("annualRevenue", domain.FieldCurrency, "Annual revenue", dsl.Required(), dsl.Min(0)).
		Go("complete")
	b.Add("complete").End("complete")

	loader, err := b.Loader()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Initialize the client with the in-memory loader
	client, err := workflowtui.New("", workflowtui.WithLoader(loader))
	if err != nil {
		log.Fatal(err)
	}

	// 3. Run a session with scripted input; "abc" is rejected and asked again
	answers := strings.NewReader("yes\nabc\n$50,000\n")
	outcome, err := client.Run(context.Background(),
		runner.WithInput(runner.NewTextHandler(answers, io.Discard)),
		runner.WithView(runner.NewTextView(io.Discard)),
	)
	if err != nil {
		log.Fatal(err)
	}

	raw, _ := json.Marshal(outcome.Data)
	fmt.Println(outcome.FinalNodeID, outcome.Status)
	fmt.Println(string(raw))
	// Output:
	// complete complete
	// {"hasEmployees":true,"annualRevenue":50000}
}

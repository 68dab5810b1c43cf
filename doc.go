/*
Package workflowtui runs declarative question workflows in the terminal.

A workflow is a directed graph of question nodes and end nodes. Each question node
asks for one or more typed fields; answers are validated locally and re-prompted
until they pass. The user can type "back" at any prompt to return to the previous
node, and the collected data is summarised when an end node is reached.

Graph semantics (workflow validation, node classification and edge selection)
belong to a pluggable engine behind ports.Engine. The default engine in
pkg/engine evaluates conditional edges against the collected answers.

# Usage

Load a workflow file and run a session on stdin/stdout:

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/workflow-tui"
	)

	func main() {
		client, err := workflowtui.New("./commercial-gl.json")
		if err != nil {
			log.Fatal(err)
		}

		outcome, err := client.Run(context.Background())
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("finished at %s with %d answers", outcome.FinalNodeID, outcome.Data.Len())
	}

Workflows can also be built in Go with pkg/dsl and injected with WithLoader.

# Architecture

  - pkg/schema: the field validator (pure, no IO).
  - pkg/runner: prompt loop, input parsing and the session driver with its history stack.
  - pkg/ports: the engine, input and loader contracts.
  - pkg/engine: the default engine.
  - cmd/workflow-tui: the command line client.
*/
package workflowtui

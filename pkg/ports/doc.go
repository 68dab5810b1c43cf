/*
Package ports defines the driven ports (interfaces) of the workflow client.

These interfaces decouple the session driver from external implementations, allowing
the prompt loop to run against any workflow engine and any line-oriented input.

# Key Interfaces

  - Engine: The external workflow engine (graph validation, node classification, traversal).
  - LineReader: Line-oriented user input, opened once per session and closed on exit.
  - WorkflowLoader: Produces a workflow definition from a source (file, memory).
*/
package ports

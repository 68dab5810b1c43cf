// Package engine is the default ports.Engine: graph validation, node
// classification and condition-based routing over a domain.Workflow.
//
// The session driver in pkg/runner never evaluates conditions itself; it asks
// the engine for the next node after every completed question node.
package engine

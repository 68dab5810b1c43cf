package domain

import "errors"

// ErrInvalidWorkflow is returned when the engine rejects a workflow before the session starts.
var ErrInvalidWorkflow = errors.New("invalid workflow")

// ErrNodeNotFound is returned when a node id does not resolve to a node.
var ErrNodeNotFound = errors.New("node not found")

// ErrUnknownNodeType is returned for nodes that are neither question nor end nodes.
var ErrUnknownNodeType = errors.New("unknown node type")

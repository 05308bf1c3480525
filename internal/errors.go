// Package internal contains implementation details shared with the top-level package,
// not exposed to application code.
package internal

import "fmt"

// These error types are used only internally to distinguish between reasons a filter
// leaf could not be evaluated. They are surfaced only through the evaluator's error
// logger; evaluation itself degrades to a non-match.

// When possible, we define these types as renames of a simple type like string, rather
// than as a struct. This is a minor optimization to take advantage of the fact that a
// simple type that implements an interface does not need to be allocated on the heap.

// CircularSegmentReferenceError means a segment filter refers, directly or transitively,
// to a segment already being evaluated. The string value is the key of the referenced
// segment.
type CircularSegmentReferenceError string

func (e CircularSegmentReferenceError) Error() string {
	return fmt.Sprintf("segment filter referencing %q caused a circular reference;"+
		" the filter is treated as non-matching", string(e))
}

// SegmentDepthError means the chain of nested segment references exceeded the
// evaluator's depth limit. The integer value is the limit.
type SegmentDepthError int

func (e SegmentDepthError) Error() string {
	return fmt.Sprintf("nested segment references exceeded the maximum depth of %d", int(e))
}

// BadFilterOperatorError means a filter's operator cannot be applied to its resource
// kind.
type BadFilterOperatorError struct {
	Operator string
	Kind     string
}

func (e BadFilterOperatorError) Error() string {
	return fmt.Sprintf("operator %q cannot be used with a %s filter", e.Operator, e.Kind)
}

// BadActionMetricError means an action filter specified an unrecognized metric. The
// string value is the metric.
type BadActionMetricError string

func (e BadActionMetricError) Error() string {
	return fmt.Sprintf("unrecognized action metric %q", string(e))
}

// BadResourceKindError means a filter leaf had an unrecognized resource kind. The
// string value is the kind.
type BadResourceKindError string

func (e BadResourceKindError) Error() string {
	return fmt.Sprintf("unrecognized resource kind %q", string(e))
}

// MissingConnectorError means a node other than its group's first had no connector;
// this indicates a bug in whatever produced the tree. The string value is the node id.
type MissingConnectorError string

func (e MissingConnectorError) Error() string {
	return fmt.Sprintf("node %q has no connector; treating it as \"and\"", string(e))
}

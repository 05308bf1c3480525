// Package evaluation contains the segment evaluation engine: given a segment's filter
// tree and a person's attributes, actions, and device, it decides boolean membership.
//
// The filter tree data model and its structural editing operations are in the segmodel
// subpackage; fluent constructors for segments and filters are in segbuilders. Normal
// use of this library is to maintain a tree with the segmodel editing operations, store
// it with the segmodel serialization, and resolve membership with an Evaluator.
package evaluation

import (
	"github.com/surveycove/go-segment-evaluation/segmodel"
)

// Evaluator is the engine for resolving segment membership.
type Evaluator interface {
	// Evaluate decides whether a person belongs to a segment.
	//
	// The segment is passed by reference only for efficiency; the evaluator will never
	// modify any of its properties. Passing a nil segment will result in a panic.
	//
	// The evaluator does not know anything about analytics or caching; the caller can
	// provide a callback in segmentMatchRecorder to be notified of every nested segment
	// evaluation performed because of segment-reference filters. The recorder parameter
	// can be nil if you do not need that.
	Evaluate(
		segment *segmodel.Segment,
		person PersonData,
		segmentMatchRecorder SegmentMatchRecorder,
	) bool
}

// SegmentMatchRecorder is a function that Evaluator.Evaluate() will call to record the
// result of a nested segment evaluation.
type SegmentMatchRecorder func(SegmentMatchEvent)

// SegmentMatchEvent is the parameter data passed to SegmentMatchRecorder.
type SegmentMatchEvent struct {
	// TargetSegmentID is the id of the segment whose filter referenced another segment.
	TargetSegmentID string
	// ReferencedSegment is the full configuration of the referenced segment. This is
	// passed by reference for efficiency only; it is nil if the segment was not found.
	// The SegmentMatchRecorder must not modify the segment's properties.
	ReferencedSegment *segmodel.Segment
	// Match is the result of evaluating the referenced segment, before any negation by
	// the referencing filter's operator.
	Match bool
}

// DataProvider is an abstraction for querying segments from a data store. The caller
// provides an implementation of this interface to NewEvaluator.
//
// Segments are returned by reference for efficiency only (on the assumption that the
// caller already has them in memory); the evaluator will never modify their properties.
// Each lookup is a distinguishable read that implementations are free to cache.
type DataProvider interface {
	// GetSegment attempts to retrieve a segment from the data store by id.
	//
	// The evaluator calls this method if a filter in the tree references another
	// segment.
	//
	// The method returns nil if the segment was not found. The DataProvider should
	// treat any deleted segment as "not found" even if the data store contains a
	// deleted segment placeholder for it.
	GetSegment(id string) *segmodel.Segment
}

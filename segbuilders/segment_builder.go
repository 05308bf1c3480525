// Package segbuilders contains helpers for constructing segments and filter trees
// programmatically. The constructors assign collision-resistant node ids, satisfying
// the id-uniqueness contract of the segmodel editing operations.
package segbuilders

import (
	"github.com/surveycove/go-segment-evaluation/segmodel"
)

// SegmentBuilder provides a builder pattern for Segment.
type SegmentBuilder struct {
	segment segmodel.Segment
}

// NewSegmentBuilder creates a SegmentBuilder.
func NewSegmentBuilder(id string) *SegmentBuilder {
	return &SegmentBuilder{segmodel.Segment{ID: id}}
}

// Build returns the configured Segment.
func (b *SegmentBuilder) Build() segmodel.Segment {
	s := b.segment
	s.Filters = s.Filters.Clone()
	segmodel.PreprocessSegment(&s)
	return s
}

// Title sets the segment's display name.
func (b *SegmentBuilder) Title(value string) *SegmentBuilder {
	b.segment.Title = value
	return b
}

// Description sets the segment's description.
func (b *SegmentBuilder) Description(value string) *SegmentBuilder {
	b.segment.Description = value
	return b
}

// Private marks the segment as an anonymous survey-scoped segment.
func (b *SegmentBuilder) Private(value bool) *SegmentBuilder {
	b.segment.Private = value
	return b
}

// Filters sets the segment's root filter group, replacing any filters added so far.
func (b *SegmentBuilder) Filters(group segmodel.FilterGroup) *SegmentBuilder {
	b.segment.Filters = group
	return b
}

// AddFilter appends a node to the segment's root filter group, defaulting its connector
// the same way the segmodel.AddFilter editing operation does.
func (b *SegmentBuilder) AddFilter(node segmodel.FilterNode) *SegmentBuilder {
	b.segment.Filters = segmodel.AddFilter(b.segment.Filters, node)
	return b
}

// Surveys sets the list of surveys targeting this segment.
func (b *SegmentBuilder) Surveys(surveyIDs ...string) *SegmentBuilder {
	b.segment.SurveyIDs = surveyIDs
	return b
}

// Version sets the segment's Version property.
func (b *SegmentBuilder) Version(value int) *SegmentBuilder {
	b.segment.Version = value
	return b
}

// Deleted marks the segment as a tombstone.
func (b *SegmentBuilder) Deleted(value bool) *SegmentBuilder {
	b.segment.Deleted = value
	return b
}

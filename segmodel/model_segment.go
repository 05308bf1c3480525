package segmodel

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// Connector is the boolean operator joining a filter node to its immediate predecessor
// within the same group. The zero value means "no connector", which is only valid for
// the first node of a group (it has no predecessor to connect to). It is serialized as
// JSON null in that case.
type Connector string

const (
	// ConnectorNone is the connector of a group's first node.
	ConnectorNone Connector = ""
	// ConnectorAnd joins a node to its predecessor with boolean AND.
	ConnectorAnd Connector = "and"
	// ConnectorOr joins a node to its predecessor with boolean OR.
	ConnectorOr Connector = "or"
)

// ResourceKind identifies which catalog entity a filter leaf tests against.
type ResourceKind string

const (
	// KindAttribute filters on a person attribute value.
	KindAttribute ResourceKind = "attribute"
	// KindAction filters on occurrences of a tracked action.
	KindAction ResourceKind = "action"
	// KindSegment filters on membership in another segment.
	KindSegment ResourceKind = "segment"
	// KindDevice filters on the person's device type.
	KindDevice ResourceKind = "device"
)

// DeviceType is the device classification used by device filters.
type DeviceType string

const (
	// DevicePhone matches phone-class devices.
	DevicePhone DeviceType = "phone"
	// DeviceDesktop matches desktop-class devices.
	DeviceDesktop DeviceType = "desktop"
)

// ResourceRef ties a filter leaf to the external catalog entity it filters on.
// Exactly one of the identifier fields is meaningful, selected by Kind.
type ResourceRef struct {
	// Kind determines which identifier field below is used.
	Kind ResourceKind
	// AttributeClassID is the attribute class identifier, for KindAttribute.
	AttributeClassID string
	// ActionClassID is the action class identifier, for KindAction.
	ActionClassID string
	// SegmentID is the referenced segment's identifier, for KindSegment.
	SegmentID string
	// DeviceType is the device type literal, for KindDevice.
	DeviceType DeviceType
}

// Qualifier is a filter leaf's operator plus, for action filters, the metric that the
// operator compares.
type Qualifier struct {
	// Operator is the comparison operator applied to the resource's value.
	Operator Operator
	// Metric selects which derived action statistic is compared. It is empty for
	// non-action filters.
	Metric ActionMetric
}

// ResourceFilter is a single predicate over one catalog resource: "attribute X equals Y",
// "action A happened more than N times last week", "is in segment S", "device is phone".
type ResourceFilter struct {
	// Root identifies the catalog entity being filtered on.
	Root ResourceRef
	// Qualifier is the operator (and, for actions, the metric) of the predicate.
	Qualifier Qualifier
	// Value is the comparison value: a string, a number, or an array of values for the
	// multi-value operators.
	Value ldvalue.Value
	// preprocessed is created by PreprocessSegment to speed up matching.
	preprocessed filterPreprocessedData
}

// FilterNode is one element of a filter group: either a single ResourceFilter leaf or a
// nested group of further nodes. A node is a group if and only if Group is non-nil; the
// editing operations and the deserializer maintain that convention (an empty group is
// represented by a non-nil zero-length slice).
type FilterNode struct {
	// ID is an opaque identifier, unique within the whole tree, stable across edits.
	ID string
	// Connector joins this node to the previous node in the same group. It is
	// ConnectorNone for a group's first node and non-empty for every other node.
	Connector Connector
	// Resource is the leaf predicate. It is meaningful only when Group is nil.
	Resource ResourceFilter
	// Group is the nested child list for group nodes, in evaluation order.
	Group FilterGroup
}

// IsGroup returns true if this node is a nested group rather than a leaf.
func (n *FilterNode) IsGroup() bool {
	return n.Group != nil
}

// FilterGroup is an ordered sequence of filter nodes. Order is semantically significant:
// it determines connector chaining and the left-to-right evaluation fold.
type FilterGroup []FilterNode

// Segment describes a reusable audience: a named filter tree that decides which people
// qualify, plus the surveys currently targeting it.
type Segment struct {
	// ID is the unique identifier of the segment.
	ID string
	// Title is the segment's display name. Private segments have no meaningful title.
	Title string
	// Description is an optional longer description.
	Description string
	// Private is true for anonymous single-survey segments created inline by the survey
	// editor; such segments are not listed in the reusable segment catalog and their
	// lifecycle is bound to the owning survey.
	Private bool
	// Filters is the root filter group. An empty root group matches everyone.
	Filters FilterGroup
	// SurveyIDs lists the surveys currently targeting this segment.
	SurveyIDs []string
	// Version is incremented on every saved change to the segment.
	Version int
	// Deleted is true if this is a tombstone for a deleted segment. This is only
	// relevant in data store implementations.
	Deleted bool
}

// GetID returns the segment's identifier.
//
// This method exists in order to conform to interfaces used by data store integrations.
func (s *Segment) GetID() string {
	return s.ID
}

// GetVersion returns the version of the segment.
//
// This method exists in order to conform to interfaces used by data store integrations.
func (s *Segment) GetVersion() int {
	return s.Version
}

// IsDeleted returns whether this is a deleted segment placeholder.
//
// This method exists in order to conform to interfaces used by data store integrations.
func (s *Segment) IsDeleted() bool {
	return s.Deleted
}

// AttributeClass is the catalog shape of a person attribute that filters can reference.
type AttributeClass struct {
	// ID is the attribute class identifier referenced by ResourceRef.AttributeClassID.
	ID string
	// Name is the attribute's display name.
	Name string
	// Archived marks attribute classes that can no longer be added to new filters.
	Archived bool
}

// ActionClassType distinguishes how an action class is tracked.
type ActionClassType string

const (
	// ActionTypeCode is an action tracked by an explicit code call.
	ActionTypeCode ActionClassType = "code"
	// ActionTypeNoCode is an action tracked by a no-code selector rule.
	ActionTypeNoCode ActionClassType = "noCode"
	// ActionTypeAutomatic is an action tracked automatically by the platform.
	ActionTypeAutomatic ActionClassType = "automatic"
)

// ActionClass is the catalog shape of a tracked action that filters can reference.
type ActionClass struct {
	// ID is the action class identifier referenced by ResourceRef.ActionClassID.
	ID string
	// Name is the action's display name.
	Name string
	// Type is how the action is tracked.
	Type ActionClassType
	// Archived marks action classes that can no longer be added to new filters.
	Archived bool
}

// SegmentRef is the catalog shape of a segment as referenced by nested segment filters.
type SegmentRef struct {
	// ID is the segment identifier referenced by ResourceRef.SegmentID.
	ID string
	// Title is the segment's display name.
	Title string
	// Private is true for survey-scoped segments not shown in the reusable catalog.
	Private bool
}

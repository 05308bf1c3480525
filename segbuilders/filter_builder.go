package segbuilders

import (
	"github.com/google/uuid"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/surveycove/go-segment-evaluation/segmodel"
)

// AttributeFilter constructs a leaf node testing a person attribute. The node gets a
// generated unique id and no connector; connectors are assigned when the node is placed
// in a group.
func AttributeFilter(attributeClassID string, op segmodel.Operator, value ldvalue.Value) segmodel.FilterNode {
	return segmodel.FilterNode{
		ID: uuid.NewString(),
		Resource: segmodel.ResourceFilter{
			Root: segmodel.ResourceRef{
				Kind:             segmodel.KindAttribute,
				AttributeClassID: attributeClassID,
			},
			Qualifier: segmodel.Qualifier{Operator: op},
			Value:     value,
		},
	}
}

// ActionFilter constructs a leaf node comparing a derived action statistic.
func ActionFilter(
	actionClassID string,
	metric segmodel.ActionMetric,
	op segmodel.Operator,
	value ldvalue.Value,
) segmodel.FilterNode {
	return segmodel.FilterNode{
		ID: uuid.NewString(),
		Resource: segmodel.ResourceFilter{
			Root: segmodel.ResourceRef{
				Kind:          segmodel.KindAction,
				ActionClassID: actionClassID,
			},
			Qualifier: segmodel.Qualifier{Operator: op, Metric: metric},
			Value:     value,
		},
	}
}

// SegmentFilter constructs a leaf node testing membership in another segment. op should
// be OperatorUserIsIn or OperatorUserIsNotIn.
func SegmentFilter(segmentID string, op segmodel.Operator) segmodel.FilterNode {
	return segmodel.FilterNode{
		ID: uuid.NewString(),
		Resource: segmodel.ResourceFilter{
			Root: segmodel.ResourceRef{
				Kind:      segmodel.KindSegment,
				SegmentID: segmentID,
			},
			Qualifier: segmodel.Qualifier{Operator: op},
		},
	}
}

// DeviceFilter constructs a leaf node testing the person's device type. op should be
// OperatorEquals or OperatorNotEquals.
func DeviceFilter(deviceType segmodel.DeviceType, op segmodel.Operator) segmodel.FilterNode {
	return segmodel.FilterNode{
		ID: uuid.NewString(),
		Resource: segmodel.ResourceFilter{
			Root: segmodel.ResourceRef{
				Kind:       segmodel.KindDevice,
				DeviceType: deviceType,
			},
			Qualifier: segmodel.Qualifier{Operator: op},
			Value:     ldvalue.String(string(deviceType)),
		},
	}
}

// Group constructs a group node from the given children. The first child's connector is
// cleared and unset connectors on later children default to "and", keeping the group
// structurally valid regardless of how the children were built.
func Group(children ...segmodel.FilterNode) segmodel.FilterNode {
	group := make(segmodel.FilterGroup, 0, len(children))
	for i, c := range children {
		if i == 0 {
			c.Connector = segmodel.ConnectorNone
		} else if c.Connector == segmodel.ConnectorNone {
			c.Connector = segmodel.ConnectorAnd
		}
		group = append(group, c)
	}
	return segmodel.FilterNode{
		ID:    uuid.NewString(),
		Group: group,
	}
}

// And returns the node with its connector set to "and".
func And(node segmodel.FilterNode) segmodel.FilterNode {
	node.Connector = segmodel.ConnectorAnd
	return node
}

// Or returns the node with its connector set to "or".
func Or(node segmodel.FilterNode) segmodel.FilterNode {
	node.Connector = segmodel.ConnectorOr
	return node
}

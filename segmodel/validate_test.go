package segmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

func TestValidateAcceptsValidTree(t *testing.T) {
	assert.NoError(t, ValidateGroup(makeTestTree()))
	assert.NoError(t, ValidateGroup(nil))
	assert.NoError(t, ValidateGroup(FilterGroup{}))
}

func TestValidateRejectsConnectorOnFirstNode(t *testing.T) {
	g := FilterGroup{attrLeaf("f1", ConnectorAnd)}
	assert.Equal(t, LeadingConnectorError("f1"), ValidateGroup(g))

	nested := FilterGroup{
		attrLeaf("f1", ConnectorNone),
		groupNode("g1", ConnectorAnd, attrLeaf("f2", ConnectorOr)),
	}
	assert.Equal(t, LeadingConnectorError("f2"), ValidateGroup(nested))
}

func TestValidateRejectsMissingConnector(t *testing.T) {
	g := FilterGroup{
		attrLeaf("f1", ConnectorNone),
		attrLeaf("f2", ConnectorNone),
	}
	assert.Equal(t, MissingConnectorError("f2"), ValidateGroup(g))
}

func TestValidateRejectsUnrecognizedConnector(t *testing.T) {
	g := FilterGroup{
		attrLeaf("f1", ConnectorNone),
		attrLeaf("f2", Connector("xor")),
	}
	assert.Equal(t, BadConnectorError("f2"), ValidateGroup(g))
}

func TestValidateRejectsDuplicateIDsAcrossNestingLevels(t *testing.T) {
	g := FilterGroup{
		attrLeaf("f1", ConnectorNone),
		groupNode("g1", ConnectorAnd, attrLeaf("f1", ConnectorNone)),
	}
	assert.Equal(t, DuplicateIDError("f1"), ValidateGroup(g))
}

func TestValidateRejectsEmptyNestedGroup(t *testing.T) {
	g := FilterGroup{
		attrLeaf("f1", ConnectorNone),
		groupNode("g1", ConnectorAnd),
	}
	assert.Equal(t, EmptyGroupError("g1"), ValidateGroup(g))
}

func TestValidateRejectsBadResources(t *testing.T) {
	badKind := FilterNode{ID: "f1", Resource: ResourceFilter{
		Root:      ResourceRef{Kind: ResourceKind("mystery")},
		Qualifier: Qualifier{Operator: OperatorEquals},
	}}
	err := ValidateGroup(FilterGroup{badKind})
	assert.IsType(t, BadResourceError{}, err)

	noClassID := FilterNode{ID: "f1", Resource: ResourceFilter{
		Root:      ResourceRef{Kind: KindAttribute},
		Qualifier: Qualifier{Operator: OperatorEquals},
	}}
	assert.IsType(t, BadResourceError{}, ValidateGroup(FilterGroup{noClassID}))

	badOperator := FilterNode{ID: "f1", Resource: ResourceFilter{
		Root:      ResourceRef{Kind: KindDevice, DeviceType: DevicePhone},
		Qualifier: Qualifier{Operator: OperatorContains},
		Value:     ldvalue.String("phone"),
	}}
	assert.IsType(t, BadResourceError{}, ValidateGroup(FilterGroup{badOperator}))

	badMetric := FilterNode{ID: "f1", Resource: ResourceFilter{
		Root:      ResourceRef{Kind: KindAction, ActionClassID: "a1"},
		Qualifier: Qualifier{Operator: OperatorEquals, Metric: ActionMetric("mystery")},
		Value:     ldvalue.Int(1),
	}}
	assert.IsType(t, BadResourceError{}, ValidateGroup(FilterGroup{badMetric}))

	badDevice := FilterNode{ID: "f1", Resource: ResourceFilter{
		Root:      ResourceRef{Kind: KindDevice, DeviceType: DeviceType("tablet")},
		Qualifier: Qualifier{Operator: OperatorEquals},
		Value:     ldvalue.String("tablet"),
	}}
	assert.IsType(t, BadResourceError{}, ValidateGroup(FilterGroup{badDevice}))
}

func TestValidateAcceptsAllFilterKinds(t *testing.T) {
	g := FilterGroup{
		attrLeaf("f1", ConnectorNone),
		{ID: "f2", Connector: ConnectorAnd, Resource: ResourceFilter{
			Root:      ResourceRef{Kind: KindAction, ActionClassID: "a1"},
			Qualifier: Qualifier{Operator: OperatorGreaterThan, Metric: MetricLastWeekCount},
			Value:     ldvalue.Int(2),
		}},
		{ID: "f3", Connector: ConnectorOr, Resource: ResourceFilter{
			Root:      ResourceRef{Kind: KindSegment, SegmentID: "s1"},
			Qualifier: Qualifier{Operator: OperatorUserIsIn},
		}},
		{ID: "f4", Connector: ConnectorAnd, Resource: ResourceFilter{
			Root:      ResourceRef{Kind: KindDevice, DeviceType: DeviceDesktop},
			Qualifier: Qualifier{Operator: OperatorNotEquals},
			Value:     ldvalue.String("desktop"),
		}},
	}
	assert.NoError(t, ValidateGroup(g))
}

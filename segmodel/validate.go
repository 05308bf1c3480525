package segmodel

import "fmt"

// These error types report structural invariant violations in a filter tree. The
// editing operations in this package never produce an invalid tree from a valid one, so
// a validation failure indicates a bug in the caller (or hand-built data); callers
// should surface it rather than silently repairing the tree.

// LeadingConnectorError means a group's first node has a connector. The string value is
// the node id.
type LeadingConnectorError string

func (e LeadingConnectorError) Error() string {
	return fmt.Sprintf("first node %q of a group must not have a connector", string(e))
}

// MissingConnectorError means a node other than its group's first has no connector. The
// string value is the node id.
type MissingConnectorError string

func (e MissingConnectorError) Error() string {
	return fmt.Sprintf("node %q has no connector joining it to its predecessor", string(e))
}

// BadConnectorError means a node's connector is neither "and" nor "or". The string
// value is the node id.
type BadConnectorError string

func (e BadConnectorError) Error() string {
	return fmt.Sprintf("node %q has an unrecognized connector", string(e))
}

// DuplicateIDError means the same id appears on more than one node in the tree.
type DuplicateIDError string

func (e DuplicateIDError) Error() string {
	return fmt.Sprintf("node id %q appears more than once in the tree", string(e))
}

// EmptyGroupError means a nested group has no children. The string value is the group
// node's id. Only the root group may be empty.
type EmptyGroupError string

func (e EmptyGroupError) Error() string {
	return fmt.Sprintf("nested group %q has no children", string(e))
}

// BadResourceError means a leaf's resource reference, operator, or metric is not a
// valid combination.
type BadResourceError struct {
	// FilterID is the id of the offending leaf.
	FilterID string
	// Detail describes the problem.
	Detail string
}

func (e BadResourceError) Error() string {
	return fmt.Sprintf("filter %q is invalid: %s", e.FilterID, e.Detail)
}

// ValidateGroup checks the structural invariants of a filter tree: connector placement,
// id uniqueness across all nesting levels, no empty nested groups, and per-leaf
// operator/kind consistency. It returns nil for a valid tree, or the first violation
// found in pre-order.
func ValidateGroup(g FilterGroup) error {
	seen := make(map[string]bool)
	return validateGroup(g, seen)
}

func validateGroup(g FilterGroup, seen map[string]bool) error {
	for i := range g {
		n := &g[i]
		if seen[n.ID] {
			return DuplicateIDError(n.ID)
		}
		seen[n.ID] = true
		switch {
		case i == 0 && n.Connector != ConnectorNone:
			return LeadingConnectorError(n.ID)
		case i > 0 && n.Connector == ConnectorNone:
			return MissingConnectorError(n.ID)
		case n.Connector != ConnectorNone && n.Connector != ConnectorAnd && n.Connector != ConnectorOr:
			return BadConnectorError(n.ID)
		}
		if n.IsGroup() {
			if len(n.Group) == 0 {
				return EmptyGroupError(n.ID)
			}
			if err := validateGroup(n.Group, seen); err != nil {
				return err
			}
			continue
		}
		if err := validateResource(n); err != nil {
			return err
		}
	}
	return nil
}

func validateResource(n *FilterNode) error {
	f := &n.Resource
	switch f.Root.Kind {
	case KindAttribute:
		if f.Root.AttributeClassID == "" {
			return BadResourceError{FilterID: n.ID, Detail: "attribute filter has no attribute class id"}
		}
	case KindAction:
		if f.Root.ActionClassID == "" {
			return BadResourceError{FilterID: n.ID, Detail: "action filter has no action class id"}
		}
		if !MetricIsValid(f.Qualifier.Metric) {
			return BadResourceError{FilterID: n.ID,
				Detail: fmt.Sprintf("unrecognized action metric %q", f.Qualifier.Metric)}
		}
	case KindSegment:
		if f.Root.SegmentID == "" {
			return BadResourceError{FilterID: n.ID, Detail: "segment filter has no segment id"}
		}
	case KindDevice:
		if f.Root.DeviceType != DevicePhone && f.Root.DeviceType != DeviceDesktop {
			return BadResourceError{FilterID: n.ID,
				Detail: fmt.Sprintf("unrecognized device type %q", f.Root.DeviceType)}
		}
	default:
		return BadResourceError{FilterID: n.ID,
			Detail: fmt.Sprintf("unrecognized resource kind %q", f.Root.Kind)}
	}
	if !OperatorIsValidForKind(f.Qualifier.Operator, f.Root.Kind) {
		return BadResourceError{FilterID: n.ID,
			Detail: fmt.Sprintf("operator %q cannot be used with a %s filter", f.Qualifier.Operator, f.Root.Kind)}
	}
	if f.Qualifier.Metric != "" && f.Root.Kind != KindAction {
		return BadResourceError{FilterID: n.ID,
			Detail: fmt.Sprintf("metric %q on a non-action filter", f.Qualifier.Metric)}
	}
	return nil
}

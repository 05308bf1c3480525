package segmodel

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// This file contains the structural editing operations for filter trees. All operations
// are pure: they deep-copy the input group, edit the copy, and return it. The caller's
// tree is never modified and the returned tree never aliases it. An operation whose
// target id does not exist returns an unchanged (but freshly owned) copy, so that edits
// against a concurrently removed node degrade to no-ops instead of failing.
//
// All locate helpers share one traversal contract: pre-order depth-first, first match
// by id wins. Ids are assumed unique within a tree; callers must guarantee that at
// creation time (the segbuilders package does it for them).

// MoveDirection is the direction argument of MoveResource.
type MoveDirection string

const (
	// MoveUp swaps a node with its immediate predecessor.
	MoveUp MoveDirection = "up"
	// MoveDown swaps a node with its immediate successor.
	MoveDown MoveDirection = "down"
)

// Clone returns a deep copy of the group. Leaf values (ldvalue.Value) are immutable and
// are shared rather than copied.
func (g FilterGroup) Clone() FilterGroup {
	if g == nil {
		return nil
	}
	ret := make(FilterGroup, len(g))
	for i, n := range g {
		ret[i] = n
		if n.Group != nil {
			ret[i].Group = n.Group.Clone()
		}
	}
	return ret
}

// FindFilter locates the node with the given id anywhere in the tree. The returned
// pointer is into the given tree and must be treated as read-only; it is nil if the id
// was not found.
func FindFilter(g FilterGroup, id string) *FilterNode {
	for i := range g {
		if g[i].ID == id {
			return &g[i]
		}
		if g[i].IsGroup() {
			if found := FindFilter(g[i].Group, id); found != nil {
				return found
			}
		}
	}
	return nil
}

// AddFilter appends a node to the end of the top-level group. If the group was empty,
// the node's connector is forced to ConnectorNone; otherwise an unset connector
// defaults to ConnectorAnd.
func AddFilter(g FilterGroup, node FilterNode) FilterGroup {
	ret := g.Clone()
	node.Group = node.Group.Clone()
	if len(ret) == 0 {
		node.Connector = ConnectorNone
	} else if node.Connector == ConnectorNone {
		node.Connector = ConnectorAnd
	}
	return append(ret, node)
}

// AddFilterBelow inserts a node immediately after the node with targetID, in the same
// group. An unset connector on the new node defaults to the target's connector, or
// ConnectorAnd if the target is its group's first node. If targetID is not found the
// tree is returned unchanged.
func AddFilterBelow(g FilterGroup, targetID string, node FilterNode) FilterGroup {
	ret := g.Clone()
	node.Group = node.Group.Clone()
	insertBelow(&ret, targetID, node)
	return ret
}

func insertBelow(g *FilterGroup, targetID string, node FilterNode) bool {
	for i := range *g {
		if (*g)[i].ID == targetID {
			if node.Connector == ConnectorNone {
				node.Connector = (*g)[i].Connector
				if node.Connector == ConnectorNone {
					node.Connector = ConnectorAnd
				}
			}
			*g = append(*g, FilterNode{})
			copy((*g)[i+2:], (*g)[i+1:])
			(*g)[i+1] = node
			return true
		}
		if (*g)[i].IsGroup() {
			if insertBelow(&(*g)[i].Group, targetID, node) {
				return true
			}
		}
	}
	return false
}

// CreateGroupFromResource wraps the node with targetID into a new singleton group that
// takes over the node's slot and positional connector; the wrapped node becomes the
// group's first child. groupID is the id of the new group node and must be unique
// within the tree. If targetID is not found the tree is returned unchanged.
func CreateGroupFromResource(g FilterGroup, targetID string, groupID string) FilterGroup {
	ret := g.Clone()
	wrapInGroup(&ret, targetID, groupID)
	return ret
}

func wrapInGroup(g *FilterGroup, targetID string, groupID string) bool {
	for i := range *g {
		if (*g)[i].ID == targetID {
			child := (*g)[i]
			connector := child.Connector
			child.Connector = ConnectorNone
			(*g)[i] = FilterNode{
				ID:        groupID,
				Connector: connector,
				Group:     FilterGroup{child},
			}
			return true
		}
		if (*g)[i].IsGroup() {
			if wrapInGroup(&(*g)[i].Group, targetID, groupID) {
				return true
			}
		}
	}
	return false
}

// MoveResource swaps the node with targetID with its immediate neighbor in the given
// direction, within its containing group. Connector slots stay positionally fixed: only
// node identity and payload move, so the moved node takes on the connector of the
// position it now occupies. Moving past the group boundary is a no-op, as is an
// unknown targetID.
func MoveResource(g FilterGroup, targetID string, direction MoveDirection) FilterGroup {
	ret := g.Clone()
	moveWithin(&ret, targetID, direction)
	return ret
}

func moveWithin(g *FilterGroup, targetID string, direction MoveDirection) bool {
	for i := range *g {
		if (*g)[i].ID == targetID {
			j := i - 1
			if direction == MoveDown {
				j = i + 1
			}
			if j < 0 || j >= len(*g) {
				return true
			}
			(*g)[i], (*g)[j] = (*g)[j], (*g)[i]
			(*g)[i].Connector, (*g)[j].Connector = (*g)[j].Connector, (*g)[i].Connector
			return true
		}
		if (*g)[i].IsGroup() {
			if moveWithin(&(*g)[i].Group, targetID, direction) {
				return true
			}
		}
	}
	return false
}

// DeleteResource removes the node with targetID from its containing group. A non-root
// group emptied by the removal is removed from its own parent, cascading upward; only
// the root may be left empty. If the removal leaves a group whose new first node still
// carries a connector, that connector is reset to ConnectorNone. If targetID is not
// found the tree is returned unchanged.
func DeleteResource(g FilterGroup, targetID string) FilterGroup {
	ret := g.Clone()
	if deleteWithin(&ret, targetID) {
		resetLeadingConnectors(ret)
	}
	return ret
}

func deleteWithin(g *FilterGroup, targetID string) bool {
	for i := range *g {
		if (*g)[i].ID == targetID {
			*g = append((*g)[:i], (*g)[i+1:]...)
			return true
		}
		if (*g)[i].IsGroup() {
			if deleteWithin(&(*g)[i].Group, targetID) {
				if len((*g)[i].Group) == 0 {
					*g = append((*g)[:i], (*g)[i+1:]...)
				}
				return true
			}
		}
	}
	return false
}

func resetLeadingConnectors(g FilterGroup) {
	if len(g) > 0 {
		g[0].Connector = ConnectorNone
	}
	for i := range g {
		if g[i].IsGroup() {
			resetLeadingConnectors(g[i].Group)
		}
	}
}

// ToggleConnector overwrites the connector of the node with nodeID. Only ConnectorAnd
// and ConnectorOr are valid targets; passing ConnectorNone is a no-op, as is toggling a
// group's first node (which has no connector) or an unknown nodeID.
func ToggleConnector(g FilterGroup, nodeID string, newConnector Connector) FilterGroup {
	ret := g.Clone()
	if newConnector != ConnectorAnd && newConnector != ConnectorOr {
		return ret
	}
	setConnector(ret, nodeID, newConnector)
	return ret
}

func setConnector(g FilterGroup, nodeID string, newConnector Connector) bool {
	for i := range g {
		if g[i].ID == nodeID {
			if i > 0 {
				g[i].Connector = newConnector
			}
			return true
		}
		if g[i].IsGroup() {
			if setConnector(g[i].Group, nodeID, newConnector) {
				return true
			}
		}
	}
	return false
}

// UpdateFilterValue overwrites the value of the leaf with leafID. Validating the value
// against the leaf's operator is the caller's concern. If leafID is not found, or names
// a group, the tree is returned unchanged.
func UpdateFilterValue(g FilterGroup, leafID string, value ldvalue.Value) FilterGroup {
	ret := g.Clone()
	if leaf := findLeaf(ret, leafID); leaf != nil {
		leaf.Resource.Value = value
		leaf.Resource.preprocessed = preprocessFilter(&leaf.Resource)
	}
	return ret
}

// UpdateFilterOperator overwrites the operator of the leaf with leafID. When the change
// crosses the multi-value boundary the leaf's value is reset, to an empty array when
// switching to a multi-value operator and to null when switching away, so the value
// shape always matches the operator. If leafID is not found, or names a group, the tree
// is returned unchanged.
func UpdateFilterOperator(g FilterGroup, leafID string, op Operator) FilterGroup {
	ret := g.Clone()
	if leaf := findLeaf(ret, leafID); leaf != nil {
		wasMulti := IsMultiValueOperator(leaf.Resource.Qualifier.Operator)
		leaf.Resource.Qualifier.Operator = op
		if IsMultiValueOperator(op) != wasMulti {
			if IsMultiValueOperator(op) {
				leaf.Resource.Value = ldvalue.ArrayOf()
			} else {
				leaf.Resource.Value = ldvalue.Null()
			}
		}
		leaf.Resource.preprocessed = preprocessFilter(&leaf.Resource)
	}
	return ret
}

// UpdateFilterResource overwrites the resource reference of the leaf with leafID. If
// leafID is not found, or names a group, the tree is returned unchanged.
func UpdateFilterResource(g FilterGroup, leafID string, root ResourceRef) FilterGroup {
	ret := g.Clone()
	if leaf := findLeaf(ret, leafID); leaf != nil {
		leaf.Resource.Root = root
	}
	return ret
}

func findLeaf(g FilterGroup, id string) *FilterNode {
	node := FindFilter(g, id)
	if node == nil || node.IsGroup() {
		return nil
	}
	return node
}

package input

import (
	"github.com/ja-he/tileplan/internal/control/action"
)

// Node is a node in a Tree.
// It can have child nodes or an action.
//
// NOTE:
//
//	must not have children if it has an action, and must not have an action if
//	it has children.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// Child returns the child node for the given Key.
// Returns nil, if there is no child node for the key.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// GetHelp returns the help for all sequences reachable from this node,
// relative to it.
func (n *Node) GetHelp() Help {
	help := Help{}
	if n.Action != nil {
		help[""] = n.Action.Explain()
		return help
	}
	for key, child := range n.Children {
		prefix, err := ToConfigIdentifierString(key)
		if err != nil {
			continue
		}
		for suffix, explanation := range child.GetHelp() {
			help[Keyspec(prefix)+suffix] = explanation
		}
	}
	return help
}

// NewNode returns a pointer to a new empty node Node with initialized children.
//
// NOTE: to construct a leaf with an action, prefer NewLeaf.
func NewNode() *Node {
	return &Node{
		Children: make(map[Key]*Node),
	}
}

// NewLeaf returns a pointer to a new action leaf Node without children.
func NewLeaf(action action.Action) *Node {
	return &Node{
		Action: action,
	}
}

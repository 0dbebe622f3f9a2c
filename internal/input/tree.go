package input

import (
	"fmt"

	"github.com/ja-he/tileplan/internal/control/action"
)

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	x
//	+-y
//	| +-z   -> action1          "xyz" -> action1
//	+-z     -> action2          "xz"  -> action2
//	z       -> action3          "z"   -> action3
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input or advanced in a sequence.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.Action != nil:
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether the tree is in the middle of a sequence.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// GetHelp returns the help for all sequences of the tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// ConstructInputTree construct a Tree for the given mappings of input
// sequence strings to actions.
// If a mapping is invalid or the sequences conflict (one being a prefix of
// another), this returns an error.
func ConstructInputTree(spec map[Keyspec]action.Action) (*Tree, error) {
	root := NewNode()

	for mapping, action := range spec {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting config keyspec: '%s'", err.Error())
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec mapped")
		}

		current := root
		for i, key := range sequence {
			if current.Action != nil {
				return nil, fmt.Errorf("keyspec '%s' extends another mapped sequence", mapping)
			}
			next, ok := current.Children[key]
			if !ok {
				if i == len(sequence)-1 {
					next = NewLeaf(action)
				} else {
					next = NewNode()
				}
				current.Children[key] = next
			} else if i == len(sequence)-1 {
				return nil, fmt.Errorf("keyspec '%s' conflicts with another mapped sequence", mapping)
			}
			current = next
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// EmptyTree returns a pointer to an empty tree.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{
		Root:    root,
		Current: root,
	}
}

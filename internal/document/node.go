// Package document provides the generic nested-node representation of a
// parsed State Program Report export and the parser that produces it.
package document

import "sort"

// Kind identifies which variant a Node holds.
type Kind int

// Node variants. Absent covers both missing fields and explicit nulls.
const (
	Absent Kind = iota
	Scalar
	List
	Object
)

// Node is the generic parsed-XML value: an object keyed by element or
// attribute name, a list of repeated siblings, a scalar string, or absent.
// Attribute-style keys carry a leading "@" marker; mixed-content text is
// stored under "#text". A nil *Node is a valid Absent node, so lookups
// chain without nil checks.
type Node struct {
	kind  Kind
	text  string
	items []*Node
	child map[string]*Node
}

// NewScalar returns a scalar node holding the given text.
func NewScalar(text string) *Node {
	return &Node{kind: Scalar, text: text}
}

// NewList returns a list node over the given items.
func NewList(items ...*Node) *Node {
	return &Node{kind: List, items: items}
}

// NewObject returns an object node over the given children.
func NewObject(children map[string]*Node) *Node {
	return &Node{kind: Object, child: children}
}

// Kind reports the node's variant. A nil node is Absent.
func (n *Node) Kind() Kind {
	if n == nil {
		return Absent
	}

	return n.kind
}

// Get returns the child node under key. Missing keys and non-object
// receivers yield a nil (Absent) node.
func (n *Node) Get(key string) *Node {
	if n == nil || n.kind != Object {
		return nil
	}

	return n.child[key]
}

// Items normalizes the node to an ordered sequence: Absent yields an empty
// sequence, a List yields its items unchanged, and anything else is wrapped
// as a single-element sequence. Total over any receiver and idempotent when
// the result is rewrapped as a list.
func (n *Node) Items() []*Node {
	switch n.Kind() {
	case Absent:
		return nil
	case List:
		return n.items
	default:
		return []*Node{n}
	}
}

// Text returns the scalar text, or "" for any other variant. Objects with
// mixed content expose their text under the "#text" child instead.
func (n *Node) Text() string {
	if n.Kind() != Scalar {
		return ""
	}

	return n.text
}

// Value returns the scalar text as an interface value, or nil when the node
// is absent or not a scalar. This is the form flat rows store.
func (n *Node) Value() any {
	if n.Kind() != Scalar {
		return nil
	}

	return n.text
}

// Keys returns the object's keys in sorted order, or nil for other variants.
func (n *Node) Keys() []string {
	if n.Kind() != Object {
		return nil
	}

	keys := make([]string, 0, len(n.child))
	for k := range n.child {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

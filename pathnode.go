// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xmlscan

import "math"

// unbounded marks an unset "to" sibling-index bound.
const unbounded = math.MaxInt32

// edgeKind is the token-class transition a Node's children are keyed on.
type edgeKind uint8

const (
	edgeTag edgeKind = iota
	edgeAttr
	edgeIfAttr
	edgeContent
)

// edgeKey identifies one child of a Node: its transition kind plus the name
// it filters on (empty for edgeContent).
type edgeKey struct {
	kind edgeKind
	name string
}

// Node is a position in the path-expression tree.
//
// Node is built exclusively through the chainable refinement methods below
// (Tag, Attribute, IfAttribute, Content, From, To, Assign, Follow), starting
// from Automaton.Root. A zero Node is bound to no Automaton, so Assign cannot
// be used on it or on nodes refined from it.
type Node struct {
	auto *Automaton

	// ifName/ifValue/hasIfValue implement ifAttribute: gate on an attribute's
	// presence (hasIfValue false) or exact value (hasIfValue true) without
	// selecting it as output.
	ifName     string
	ifValue    string
	hasIfValue bool
	gated      bool

	from, to int // half-open sibling-index bound [from, to)

	follow bool // the `//` descendant axis

	types []int // assigned type tags; non-empty marks this node terminal
	order int   // registration order of this node's first Assign, for stable emission

	children map[edgeKey]*Node
}

// newNode allocates a Node bound to an automaton, with an unbounded sibling
// range.
func newNode(a *Automaton) *Node {
	return &Node{auto: a, to: unbounded}
}

// child returns the existing child for key, or creates one. Repeating the
// same refinement under the same parent returns the same Node, so duplicate
// expressions collapse.
func (n *Node) child(key edgeKey) *Node {
	if n.children == nil {
		n.children = make(map[edgeKey]*Node)
	}
	if c, ok := n.children[key]; ok {
		return c
	}
	c := newNode(n.auto)
	n.children[key] = c
	return c
}

// Tag descends on an element whose name equals name.
func (n *Node) Tag(name string) *Node {
	return n.child(edgeKey{kind: edgeTag, name: name})
}

// Attribute matches an attribute named name and selects its value.
func (n *Node) Attribute(name string) *Node {
	return n.child(edgeKey{kind: edgeAttr, name: name})
}

// IfAttribute gates the current node on an attribute's presence (value ==
// "") or exact value, without consuming it as output. Unlike Tag/Attribute,
// it does not descend to a new node: it narrows the receiver in place and
// returns it, since the gate applies to whichever element the receiver
// already matches.
func (n *Node) IfAttribute(name, value string) *Node {
	n.ifName = name
	n.ifValue = value
	n.hasIfValue = value != ""
	n.gated = true
	return n
}

// Content selects the text content of the current element.
func (n *Node) Content() *Node {
	return n.child(edgeKey{kind: edgeContent})
}

// From restricts the matched-sibling index lower bound (inclusive).
func (n *Node) From(i int) *Node {
	n.from = i
	return n
}

// To restricts the matched-sibling index upper bound (exclusive).
func (n *Node) To(j int) *Node {
	n.to = j
	return n
}

// Follow sets the follow flag: the subtree rooted here matches at any depth
// greater than or equal to the current depth (the `//` descendant axis).
func (n *Node) Follow() *Node {
	n.follow = true
	return n
}

// Assign marks the current node as terminal with type tag k. Assigning the
// same node more than once, or assigning different expressions to nodes
// that collapsed together, accumulates the union of type tags.
func (n *Node) Assign(k int) *Node {
	if len(n.types) == 0 {
		n.order = n.auto.nextOrder
		n.auto.nextOrder++
		n.auto.terminals = append(n.auto.terminals, n)
	}
	for _, existing := range n.types {
		if existing == k {
			return n
		}
	}
	n.types = append(n.types, k)
	return n
}

// Automaton is an immutable-after-construction path-expression tree built by
// repeated refinement from Root(). Once built it may be shared by reference
// across any number of PathSelect runtimes.
type Automaton struct {
	root      *Node
	terminals []*Node
	nextOrder int
}

// NewAutomaton creates an automaton with a single synthetic root node, the
// builder's starting point.
func NewAutomaton() *Automaton {
	a := &Automaton{}
	a.root = newNode(a)
	return a
}

// Root returns the automaton's synthetic source node, from which path
// expressions are built via chained refinements.
func (a *Automaton) Root() *Node { return a.root }

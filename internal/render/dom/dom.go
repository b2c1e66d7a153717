// Package dom models the element tree a monitored component renders into.
//
// The monitor only needs two things from the host: a way to locate the
// component's root element by its marker attribute, and a count of that
// element's descendants. Element and Document capture exactly that; Node is
// an in-memory tree used by the simulator and tests.
package dom

// MarkerAttr is the attribute that addresses a monitored root element. Its
// value must equal the monitor's instance identifier.
const MarkerAttr = "data-rendermon"

// Element is a handle to a monitored element.
type Element interface {
	// DescendantCount returns the number of descendant elements, excluding
	// the element itself.
	DescendantCount() int
}

// Document locates monitored elements.
type Document interface {
	// QueryMarker returns the element whose MarkerAttr equals id, or nil.
	QueryMarker(id string) Element
}

// Node is an element in an in-memory tree.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Children []*Node
}

// NewNode creates an element with the given tag and children.
func NewNode(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// SetAttr sets an attribute and returns the node for chaining.
func (n *Node) SetAttr(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
	return n
}

// Mark addresses the node as the root of the monitored instance id.
func (n *Node) Mark(id string) *Node {
	return n.SetAttr(MarkerAttr, id)
}

// Append adds children to the node.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// DescendantCount counts all elements below n.
func (n *Node) DescendantCount() int {
	count := 0
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		count += 1 + c.DescendantCount()
	}
	return count
}

// find returns the first node in depth-first order whose marker equals id.
func (n *Node) find(id string) *Node {
	if n.Attrs[MarkerAttr] == id {
		return n
	}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		if found := c.find(id); found != nil {
			return found
		}
	}
	return nil
}

// Tree is a Document backed by a Node tree.
type Tree struct {
	Root *Node
}

// NewTree creates a document rooted at root.
func NewTree(root *Node) *Tree {
	return &Tree{Root: root}
}

// QueryMarker implements Document.
func (t *Tree) QueryMarker(id string) Element {
	if t == nil || t.Root == nil || id == "" {
		return nil
	}
	if n := t.Root.find(id); n != nil {
		return n
	}
	return nil
}

// Fill appends n childless elements with the given tag to parent.
func Fill(parent *Node, tag string, n int) {
	for i := 0; i < n; i++ {
		parent.Append(NewNode(tag))
	}
}

package document

// Document is the root of a tree. It always holds at least one block once
// normalized; New returns one empty paragraph.
type Document struct {
	Children []Node
}

func New(blocks ...Node) *Document {
	if len(blocks) == 0 {
		blocks = []Node{NewParagraph()}
	}
	return &Document{Children: blocks}
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	return &Document{Children: cloneNodes(d.Children)}
}

// Node returns the node at p. The root has no Node and yields false.
func (d *Document) Node(p Path) (Node, bool) {
	if len(p) == 0 {
		return nil, false
	}
	children := d.Children
	var n Node
	for _, i := range p {
		if i < 0 || i >= len(children) {
			return nil, false
		}
		n = children[i]
		el, ok := n.(*Element)
		if !ok {
			children = nil
			continue
		}
		children = el.Children
	}
	return n, true
}

// Element returns the element at p.
func (d *Document) Element(p Path) (*Element, bool) {
	n, ok := d.Node(p)
	if !ok {
		return nil, false
	}
	el, ok := n.(*Element)
	return el, ok
}

// children returns a pointer to the child slice of the node at p, where the
// empty path means the root.
func (d *Document) children(p Path) (*[]Node, bool) {
	if len(p) == 0 {
		return &d.Children, true
	}
	el, ok := d.Element(p)
	if !ok {
		return nil, false
	}
	return &el.Children, true
}

// Insert places nodes at p, shifting later siblings. p's parent must exist
// and its last index may equal the parent's child count.
func (d *Document) Insert(p Path, nodes ...Node) bool {
	if len(p) == 0 || len(nodes) == 0 {
		return false
	}
	kids, ok := d.children(p.Parent())
	if !ok {
		return false
	}
	i := p.Last()
	if i < 0 || i > len(*kids) {
		return false
	}
	out := make([]Node, 0, len(*kids)+len(nodes))
	out = append(out, (*kids)[:i]...)
	out = append(out, nodes...)
	out = append(out, (*kids)[i:]...)
	*kids = out
	return true
}

// Remove detaches and returns the node at p.
func (d *Document) Remove(p Path) (Node, bool) {
	return d.Replace(p)
}

// Replace swaps the node at p for nodes (possibly none) and returns the
// removed node.
func (d *Document) Replace(p Path, nodes ...Node) (Node, bool) {
	if len(p) == 0 {
		return nil, false
	}
	kids, ok := d.children(p.Parent())
	if !ok {
		return nil, false
	}
	i := p.Last()
	if i < 0 || i >= len(*kids) {
		return nil, false
	}
	old := (*kids)[i]
	out := make([]Node, 0, len(*kids)-1+len(nodes))
	out = append(out, (*kids)[:i]...)
	out = append(out, nodes...)
	out = append(out, (*kids)[i+1:]...)
	*kids = out
	return old, true
}

// Walk visits every node in document order. Returning false from fn skips
// the node's children.
func (d *Document) Walk(fn func(n Node, p Path) bool) {
	walkNodes(d.Children, nil, fn)
}

func walkNodes(nodes []Node, parent Path, fn func(Node, Path) bool) {
	for i, n := range nodes {
		p := parent.Child(i)
		if !fn(n, p) {
			continue
		}
		if el, ok := n.(*Element); ok {
			walkNodes(el.Children, p, fn)
		}
	}
}

// Leaves returns every text leaf with its path, in document order.
func (d *Document) Leaves() []Entry {
	var out []Entry
	d.Walk(func(n Node, p Path) bool {
		if _, ok := n.(*Text); ok {
			out = append(out, Entry{Node: n, Path: p})
		}
		return true
	})
	return out
}

// LeavesUnder returns the leaves of the subtree rooted at n.
func LeavesUnder(n Node) []*Text {
	var out []*Text
	var walk func(Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Text:
			out = append(out, n)
		case *Element:
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(n)
	return out
}

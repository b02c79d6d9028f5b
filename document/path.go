package document

// Path addresses a node by child indexes from the document root.
// The empty path is the root itself.
type Path []int

// Point is a position inside a text leaf. Offset counts grapheme clusters.
type Point struct {
	Path   Path
	Offset int
}

// Range is a selection between Anchor and Focus. Anchor may come after Focus
// in document order.
type Range struct {
	Anchor Point
	Focus  Point
}

// Entry pairs a node with its path.
type Entry struct {
	Node Node
	Path Path
}

// Match selects nodes during tree queries.
type Match func(n Node, p Path) bool

// MatchType matches elements of any of the given types.
func MatchType(types ...Type) Match {
	return func(n Node, _ Path) bool {
		el, ok := n.(*Element)
		if !ok {
			return false
		}
		for _, t := range types {
			if el.Type == t {
				return true
			}
		}
		return false
	}
}

// MatchElement matches elements for which fn returns true.
func MatchElement(fn func(el *Element) bool) Match {
	return func(n Node, _ Path) bool {
		el, ok := n.(*Element)
		return ok && fn(el)
	}
}

// MatchText matches text leaves.
func MatchText(n Node, _ Path) bool {
	_, ok := n.(*Text)
	return ok
}

func (p Path) Copy() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}

func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// IsAncestor reports whether p is a proper prefix of q.
func (p Path) IsAncestor(q Path) bool {
	if len(p) >= len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Parent returns the path of p's parent. The parent of a top-level node is
// the root (empty path).
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1].Copy()
}

// Last returns the index of p within its parent.
func (p Path) Last() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1]
}

// Next returns the path of the following sibling slot.
func (p Path) Next() Path {
	if len(p) == 0 {
		return nil
	}
	q := p.Copy()
	q[len(q)-1]++
	return q
}

// Previous returns the path of the preceding sibling, if any.
func (p Path) Previous() (Path, bool) {
	if len(p) == 0 || p[len(p)-1] == 0 {
		return nil, false
	}
	q := p.Copy()
	q[len(q)-1]--
	return q, true
}

// Child returns the path of p's i-th child.
func (p Path) Child(i int) Path {
	q := make(Path, 0, len(p)+1)
	q = append(q, p...)
	return append(q, i)
}

// ComparePath orders paths in document order. A path compares equal to its
// ancestors and descendants.
func ComparePath(a, b Path) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

// ComparePoint orders points in document order.
func ComparePoint(a, b Point) int {
	if c := ComparePath(a.Path, b.Path); c != 0 {
		return c
	}
	if len(a.Path) != len(b.Path) {
		// Points always sit on leaves; differing depths only occur for
		// malformed input, order the shallower first.
		if len(a.Path) < len(b.Path) {
			return -1
		}
		return 1
	}
	if a.Offset < b.Offset {
		return -1
	}
	if a.Offset > b.Offset {
		return 1
	}
	return 0
}

// Collapsed returns an empty range at p.
func Collapsed(p Point) Range {
	return Range{Anchor: p, Focus: p}
}

// Edges returns the range's start and end in document order.
func (r Range) Edges() (start, end Point) {
	if ComparePoint(r.Anchor, r.Focus) <= 0 {
		return r.Anchor, r.Focus
	}
	return r.Focus, r.Anchor
}

func (r Range) IsCollapsed() bool {
	return ComparePoint(r.Anchor, r.Focus) == 0
}

// Includes reports whether path p overlaps r, counting ancestors of either
// edge as inside.
func (r Range) Includes(p Path) bool {
	start, end := r.Edges()
	return ComparePath(p, start.Path) >= 0 && ComparePath(p, end.Path) <= 0
}

package document

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDocument  = errors.New("document has no blocks")
	ErrInvalidType    = errors.New("unknown element type")
	ErrInvalidChild   = errors.New("child not allowed here")
	ErrMisplacedAlign = errors.New("alignment on table element")
	ErrRaggedTable    = errors.New("table rows differ in cell count")
)

// Validate checks the structural invariants of d and returns every
// violation joined into one error, or nil.
//
// Checked: at least one block; lists hold list items; tables hold rows and
// rows hold cells; every row of a table has the same cell count; table parts
// carry no alignment; text-holding elements hold only leaves; leaves never
// sit at the top level.
func Validate(d *Document) error {
	if d == nil || len(d.Children) == 0 {
		return ErrEmptyDocument
	}
	var errs []error
	for i, n := range d.Children {
		p := Path{i}
		el, ok := n.(*Element)
		if !ok {
			errs = append(errs, fmt.Errorf("%v: text leaf at top level: %w", p, ErrInvalidChild))
			continue
		}
		switch el.Type {
		case TypeListItem, TypeTableRow, TypeTableCell:
			errs = append(errs, fmt.Errorf("%v: %s at top level: %w", p, el.Type, ErrInvalidChild))
		}
		errs = append(errs, validateElement(el, p)...)
	}
	return errors.Join(errs...)
}

func validateElement(el *Element, p Path) []error {
	var errs []error
	if !el.Type.Valid() {
		return append(errs, fmt.Errorf("%v: %q: %w", p, el.Type, ErrInvalidType))
	}
	if el.Align != AlignNone && !el.Type.AllowsAlign() {
		errs = append(errs, fmt.Errorf("%v: %s align=%s: %w", p, el.Type, el.Align, ErrMisplacedAlign))
	}

	if el.Type.HoldsText() {
		for i, c := range el.Children {
			if _, ok := c.(*Text); !ok {
				errs = append(errs, fmt.Errorf("%v: %s holds an element: %w", p.Child(i), el.Type, ErrInvalidChild))
			}
		}
		return errs
	}

	want, _ := el.Type.ChildType()
	cells := -1
	for i, c := range el.Children {
		cp := p.Child(i)
		child, ok := c.(*Element)
		if !ok || child.Type != want {
			errs = append(errs, fmt.Errorf("%v: %s may only hold %s: %w", cp, el.Type, want, ErrInvalidChild))
			continue
		}
		if el.Type == TypeTable {
			switch {
			case cells < 0:
				cells = len(child.Children)
			case cells != len(child.Children):
				errs = append(errs, fmt.Errorf("%v: %d cells, want %d: %w", cp, len(child.Children), cells, ErrRaggedTable))
			}
		}
		errs = append(errs, validateElement(child, cp)...)
	}
	return errs
}

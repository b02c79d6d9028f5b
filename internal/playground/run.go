package playground

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/iw2rmb/richdoc/document"
	"github.com/iw2rmb/richdoc/richtext"
	"github.com/iw2rmb/richdoc/tree"
)

// Run builds the script's document and replays its steps. The document is
// validated after every step; the first failure stops the run and names the
// step. The session is returned even on failure so callers can inspect the
// tree.
func Run(s *Script, log *zap.Logger) (*tree.Session, error) {
	if log == nil {
		log = zap.NewNop()
	}
	doc, err := BuildDocument(s.Document)
	if err != nil {
		return nil, err
	}
	sess := tree.New(doc, tree.Options{Logger: log.Named("tree")})
	log.Info("script start",
		zap.String("name", s.Name),
		zap.Int("blocks", len(s.Document)),
		zap.Int("steps", len(s.Steps)),
	)

	for i, st := range s.Steps {
		kind, err := st.kind()
		if err != nil {
			return sess, fmt.Errorf("step %d: %w", i+1, err)
		}
		log.Debug("step", zap.Int("index", i+1), zap.String("kind", kind))

		if err := apply(sess, st); err != nil {
			return sess, fmt.Errorf("step %d (%s): %w", i+1, kind, err)
		}
		if err := document.Validate(sess.Document()); err != nil {
			return sess, fmt.Errorf("step %d (%s): %w", i+1, kind, err)
		}
	}

	log.Info("script done", zap.String("name", s.Name), zap.Uint64("version", sess.Version()))
	return sess, nil
}

func apply(sess *tree.Session, st Step) error {
	switch {
	case st.Select != nil:
		return applySelect(sess, st.Select)
	case st.Move != nil:
		m, err := parseMove(st.Move)
		if err != nil {
			return err
		}
		sess.Move(m)
	case st.Type != nil:
		sess.InsertText(norm.NFC.String(*st.Type))
	case st.Break:
		sess.InsertBreak()
	case st.Delete > 0:
		for i := 0; i < st.Delete; i++ {
			sess.DeleteBackward()
		}
	case st.Delete < 0:
		return fmt.Errorf("%w: negative delete count %d", ErrUnknownStep, st.Delete)
	case st.Command != nil:
		c, err := command(st.Command)
		if err != nil {
			return err
		}
		c.Apply(sess)
	case st.Expect != nil:
		return check(sess, st.Expect)
	}
	return nil
}

func applySelect(sess *tree.Session, st *SelectStep) error {
	anchor := document.Point{Path: st.Anchor.Path, Offset: st.Anchor.Offset}
	focus := anchor
	if st.Focus != nil {
		focus = document.Point{Path: st.Focus.Path, Offset: st.Focus.Offset}
	}
	for _, p := range []document.Point{anchor, focus} {
		if _, ok := sess.Document().Node(p.Path); !ok {
			return fmt.Errorf("%w: no node at %v", ErrUnknownStep, p.Path)
		}
	}
	sess.Select(document.Range{Anchor: anchor, Focus: focus})
	return nil
}

var (
	moveUnits = map[string]tree.MoveUnit{
		"":         tree.MoveGrapheme,
		"grapheme": tree.MoveGrapheme,
		"block":    tree.MoveBlock,
		"doc":      tree.MoveDoc,
	}
	moveDirs = map[string]tree.MoveDir{
		"left":  tree.DirLeft,
		"right": tree.DirRight,
		"up":    tree.DirUp,
		"down":  tree.DirDown,
		"home":  tree.DirHome,
		"end":   tree.DirEnd,
	}
)

func parseMove(st *MoveStep) (tree.Move, error) {
	unit, ok := moveUnits[st.Unit]
	if !ok {
		return tree.Move{}, fmt.Errorf("%w: move unit %q", ErrUnknownStep, st.Unit)
	}
	dir, ok := moveDirs[st.Dir]
	if !ok {
		return tree.Move{}, fmt.Errorf("%w: move dir %q", ErrUnknownStep, st.Dir)
	}
	return tree.Move{Unit: unit, Dir: dir, Extend: st.Extend}, nil
}

func command(st *CommandStep) (richtext.Command, error) {
	c, err := richtext.ParseCommand(st.Name)
	if err != nil {
		return nil, err
	}
	if tc, ok := c.(richtext.TableCommand); ok {
		tc.Rows, tc.Cols = st.Rows, st.Cols
		return tc, nil
	}
	return c, nil
}

func check(sess *tree.Session, st *ExpectStep) error {
	var failed []string
	for _, name := range st.Active {
		c, err := richtext.ParseCommand(name)
		if err != nil {
			return err
		}
		if !c.Active(sess) {
			failed = append(failed, name+" inactive")
		}
	}
	for _, name := range st.Inactive {
		c, err := richtext.ParseCommand(name)
		if err != nil {
			return err
		}
		if c.Active(sess) {
			failed = append(failed, name+" active")
		}
	}
	if st.Outline != "" {
		want := strings.TrimSpace(st.Outline)
		got := strings.TrimSpace(Outline(sess.Document()))
		if got != want {
			failed = append(failed, fmt.Sprintf("outline:\n%s\nwant:\n%s", got, want))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", ErrExpectation, strings.Join(failed, "; "))
	}
	return nil
}

// BuildDocument assembles the starting document. No blocks yields one empty
// paragraph.
func BuildDocument(specs []BlockSpec) (*document.Document, error) {
	blocks := make([]document.Node, 0, len(specs))
	for i, b := range specs {
		n, err := b.build()
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		blocks = append(blocks, n)
	}
	d := document.New(blocks...)
	if err := document.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (b BlockSpec) build() (document.Node, error) {
	t := document.TypeParagraph
	if b.Type != "" {
		var ok bool
		if t, ok = document.ParseType(b.Type); !ok {
			return nil, fmt.Errorf("%w: type %q", ErrInvalidBlock, b.Type)
		}
	}
	align := document.AlignNone
	if b.Align != "" {
		var ok bool
		if align, ok = document.ParseAlign(b.Align); !ok {
			return nil, fmt.Errorf("%w: align %q", ErrInvalidBlock, b.Align)
		}
	}

	switch {
	case t.IsList():
		if len(b.Items) == 0 {
			return nil, fmt.Errorf("%w: %s without items", ErrInvalidBlock, t)
		}
		list := document.NewElement(t)
		for _, it := range b.Items {
			item := document.NewElement(document.TypeListItem, document.NewText(norm.NFC.String(it)))
			item.Align = align
			list.Children = append(list.Children, item)
		}
		return list, nil
	case t == document.TypeTable:
		rows, cols := b.Rows, b.Cols
		if rows == 0 {
			rows = richtext.DefaultTableRows
		}
		if cols == 0 {
			cols = richtext.DefaultTableCols
		}
		if rows < 0 || cols < 0 || align != document.AlignNone {
			return nil, fmt.Errorf("%w: table %dx%d align=%q", ErrInvalidBlock, rows, cols, align)
		}
		return document.NewTable(rows, cols), nil
	case t.IsTextBlock() && t != document.TypeListItem:
		el := document.NewElement(t, document.NewText(norm.NFC.String(b.Text)))
		el.Align = align
		return el, nil
	default:
		return nil, fmt.Errorf("%w: %s cannot be a top-level block", ErrInvalidBlock, t)
	}
}

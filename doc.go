// Package richdoc is the root of a rich-text document editing model.
//
// The model lives in subpackages: document holds the tree types, tree runs
// an editing session with a selection over a document, and richtext
// implements the toolbar operations (mark and block toggles, table
// structure) on top of it. This package only carries the module version.
package richdoc

// Package document implements the in-memory rich-text document tree for
// richdoc.
//
// A Document is a non-empty list of block elements. Elements hold either more
// elements or text leaves, and leaves carry inline marks. Nodes are addressed
// by Path, an index path from the document root. Offsets inside a leaf are
// counted in grapheme clusters.
package document

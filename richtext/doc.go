// Package richtext implements the formatting commands of the rich-text
// editor: mark and block toggling, block and mark queries, and table
// structure operations.
//
// Every command takes an Editor, the selection-aware tree engine, and
// mutates the document only through its primitives. Commands whose context
// is missing (no selection, no enclosing table) do nothing.
package richtext

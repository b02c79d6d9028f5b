// Package tree implements the selection-aware editing engine for richdoc
// documents.
//
// A Session owns one document.Document and its selection. It exposes the
// primitive operations formatting commands are built on: ancestor queries
// over the selection, property updates, wrapping, unwrapping, insertion and
// removal of nodes, and inline marks. Every mutation normalizes the tree and
// keeps the selection on surviving leaves.
//
// A Session is not safe for concurrent use.
package tree

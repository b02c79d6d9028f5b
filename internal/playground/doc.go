// Package playground replays YAML editing scripts against a tree.Session.
//
// A script names a starting document and a list of steps: selections,
// cursor moves, typing, line breaks, backspaces, toolbar commands and
// expectations on the toolbar state or the tree outline. Every step is
// followed by document validation, so a script doubles as an invariant
// check for the commands it exercises.
package playground

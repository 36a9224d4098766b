// Package scaffold instantiates plugin sources from a template. Substitution
// is a pure string transform (Instantiate); writing goes through a Writer
// that never clobbers an existing file unless asked to, and then keeps the
// previous content in a backup next to it. Generate ties both together for
// the primary file and the optional platform variant.
package scaffold

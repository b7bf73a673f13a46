// Package chunker splits long documents into bounded, overlapping segments
// so each piece fits into a single model call. Split points are pulled back
// to natural boundaries (sentence terminators, then whitespace) where
// possible, and consecutive chunks share a configurable overlap that the
// merge step later removes again.
package chunker

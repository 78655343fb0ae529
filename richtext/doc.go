// Package richtext implements the block-structured rich-text content engine
// behind the notepad editor.
//
// A document is an ordered list of blocks. Each block has a type (paragraph,
// heading, list item, ...), a nesting depth, and a run of grapheme clusters
// where every cluster carries its own inline style set.
//
// Coordinates are 0-based (Row, Col): Row is the block index and Col is a
// grapheme offset inside that block. Ranges are half-open: [Start, End).
package richtext

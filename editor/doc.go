// Package editor provides a Bubble Tea rich-text editor component backed by
// the richtext engine.
//
// The component renders a root container holding a block-style control row,
// an inline-style control row and the editing surface. It maps keys to engine
// commands, activates controls on mouse press, and persists the serialized
// document through a storage.Store on every content change.
package editor

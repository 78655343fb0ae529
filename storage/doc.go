// Package storage persists serialized editor documents.
//
// A Store maps string keys to opaque byte slices. The editor derives its key
// from the document ID with Key and writes the serialized document after each
// content change. Three strategies are provided: an in-process Memory store,
// a Dir store writing one file per key, and a SQLite store backed by a single
// key-value table.
package storage

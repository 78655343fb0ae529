package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// KeyPrefix is the storage key of the default document. Documents with an ID
// are stored under KeyPrefix + ":" + ID.
const KeyPrefix = "notepad_content"

var (
	// ErrNotFound is returned by Load when nothing is stored under the key.
	ErrNotFound = errors.New("storage: not found")
	// ErrUnknownBackend is returned by Open for an unsupported kind.
	ErrUnknownBackend = errors.New("storage: unknown backend")
	// ErrInvalidKey is returned for an empty key.
	ErrInvalidKey = errors.New("storage: invalid key")
)

// Store is the persistence capability used by the editor.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Deleter is implemented by stores that can remove a key.
type Deleter interface {
	Delete(ctx context.Context, key string) error
}

// Lister is implemented by stores that can enumerate their keys.
type Lister interface {
	Keys(ctx context.Context) ([]string, error)
}

// Key derives the storage key for a document ID.
func Key(documentID string) string {
	id := strings.TrimSpace(documentID)
	if id == "" {
		return KeyPrefix
	}
	return KeyPrefix + ":" + id
}

// Backend kinds accepted by Open.
const (
	KindMemory = "memory"
	KindDir    = "dir"
	KindSQLite = "sqlite"
)

// Open builds a store by kind. Path is the directory for KindDir and the
// database file for KindSQLite; it is ignored for KindMemory.
func Open(kind, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindMemory:
		return NewMemory(), nil
	case KindDir, "file":
		return NewDir(path)
	case KindSQLite, "sqlite3":
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, kind)
	}
}

// Close releases s if it holds resources.
func Close(s Store) error {
	if c, ok := s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func checkKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	return nil
}

var (
	defaultOnce  sync.Once
	defaultStore *Memory
)

// Default returns the process-wide memory store. Editors created without an
// explicit store share it, so a document survives re-creating the component
// within one process.
func Default() *Memory {
	defaultOnce.Do(func() { defaultStore = NewMemory() })
	return defaultStore
}

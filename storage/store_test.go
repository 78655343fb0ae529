package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir, err := NewDir(filepath.Join(t.TempDir(), "docs"))
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "notepad.sqlite"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return map[string]Store{
		"memory": NewMemory(),
		"dir":    dir,
		"sqlite": db,
	}
}

func TestStores_RoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			key := Key("notes/2026")
			if _, err := s.Load(ctx, key); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Load missing: got %v, want ErrNotFound", err)
			}
			if err := s.Save(ctx, key, []byte(`{"blocks":[]}`)); err != nil {
				t.Fatalf("Save: %v", err)
			}
			if err := s.Save(ctx, key, []byte(`{"blocks":[1]}`)); err != nil {
				t.Fatalf("Save overwrite: %v", err)
			}
			got, err := s.Load(ctx, key)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if string(got) != `{"blocks":[1]}` {
				t.Fatalf("Load: got %q", got)
			}

			keys, err := s.(Lister).Keys(ctx)
			if err != nil || len(keys) != 1 || keys[0] != key {
				t.Fatalf("Keys: got %v err=%v", keys, err)
			}
			if err := s.(Deleter).Delete(ctx, key); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := s.Load(ctx, key); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Load after delete: got %v, want ErrNotFound", err)
			}
		})
	}
}

func TestStores_EmptyKey(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		if err := s.Save(ctx, " ", []byte("x")); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("%s Save: got %v, want ErrInvalidKey", name, err)
		}
		if _, err := s.Load(ctx, ""); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("%s Load: got %v, want ErrInvalidKey", name, err)
		}
	}
}

func TestMemory_CopiesData(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	buf := []byte("abc")
	_ = m.Save(ctx, "k", buf)
	buf[0] = 'X'
	got, _ := m.Load(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value aliased caller buffer: got %q", got)
	}
	got[1] = 'Y'
	again, _ := m.Load(ctx, "k")
	if string(again) != "abc" {
		t.Fatalf("loaded value aliased stored buffer: got %q", again)
	}
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewMemory().Save(ctx, "k", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestDir_FileLayout(t *testing.T) {
	ctx := context.Background()
	d, err := NewDir(t.TempDir())
	if err != nil {
		t.Fatalf("NewDir: %v", err)
	}
	if err := d.Save(ctx, Key("a:b/c"), []byte("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	path := d.Path(Key("a:b/c"))
	if filepath.Dir(path) != d.Root() {
		t.Fatalf("key escaped the store dir: %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
	entries, _ := os.ReadDir(d.Root())
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}

func TestSQLite_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "store.sqlite")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := s.Save(ctx, KeyPrefix, []byte("persisted")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Load(ctx, KeyPrefix)
	if err != nil || string(got) != "persisted" {
		t.Fatalf("Load after reopen: got %q err=%v", got, err)
	}
}

func TestKey(t *testing.T) {
	cases := map[string]string{
		"":       "notepad_content",
		"  ":     "notepad_content",
		"draft":  "notepad_content:draft",
		" memo ": "notepad_content:memo",
	}
	for id, want := range cases {
		if got := Key(id); got != want {
			t.Fatalf("Key(%q): got %q, want %q", id, got, want)
		}
	}
}

func TestOpen(t *testing.T) {
	cases := []struct {
		kind string
		path string
		want string
	}{
		{"", "", "*storage.Memory"},
		{"memory", "", "*storage.Memory"},
		{"dir", filepath.Join(t.TempDir(), "d"), "*storage.Dir"},
		{"SQLite", filepath.Join(t.TempDir(), "s.db"), "*storage.SQLite"},
	}
	for _, tc := range cases {
		s, err := Open(tc.kind, tc.path)
		if err != nil {
			t.Fatalf("Open(%q): %v", tc.kind, err)
		}
		if got := typeName(s); got != tc.want {
			t.Fatalf("Open(%q): got %s, want %s", tc.kind, got, tc.want)
		}
		if err := Close(s); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
	if _, err := Open("redis", ""); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("got %v, want ErrUnknownBackend", err)
	}
}

func TestDefault_IsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("Default should return the same store")
	}
}

func typeName(s Store) string {
	switch s.(type) {
	case *Memory:
		return "*storage.Memory"
	case *Dir:
		return "*storage.Dir"
	case *SQLite:
		return "*storage.SQLite"
	default:
		return "unknown"
	}
}

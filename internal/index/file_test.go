package index

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "miso", FileName)
	return NewFileStore(path), path
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	labels, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if labels == nil || len(labels) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", labels)
	}
}

func TestSaveAndLoadPreservesOrder(t *testing.T) {
	s, _ := newTestStore(t)

	want := []string{"gitlab", "GitHub", "aws"}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Load = %v, want %v", got, want)
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	s, path := newTestStore(t)

	if err := s.Save([]string{"github"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected index file: %v", err)
	}
}

func TestSaveWritesPrettyJSON(t *testing.T) {
	s, path := newTestStore(t)

	s.Save([]string{"github", "gitlab"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "[\n  \"github\",\n  \"gitlab\"\n]"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestSaveEmptyWritesEmptyArray(t *testing.T) {
	s, path := newTestStore(t)

	s.Save(nil)

	data, _ := os.ReadFile(path)
	if string(data) != "[]" {
		t.Errorf("file content = %q, want %q", data, "[]")
	}
}

func TestSaveReplacesContent(t *testing.T) {
	s, path := newTestStore(t)

	s.Save([]string{"a", "b", "c"})
	s.Save([]string{"b"})

	got, _ := s.Load()
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("Load = %v, want [b]", got)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file to be renamed away")
	}
}

func TestSaveFilePermissions(t *testing.T) {
	s, path := newTestStore(t)
	s.Save([]string{"github"})

	info, _ := os.Stat(path)
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("expected 0600, got %o", perm)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	for _, content := range []string{"not json", `{"github": true}`, `[1, 2]`, "null"} {
		s, path := newTestStore(t)
		os.MkdirAll(filepath.Dir(path), 0700)
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		_, err := s.Load()
		if !errors.Is(err, ErrCorrupt) {
			t.Errorf("Load(%q): expected ErrCorrupt, got %v", content, err)
		}
	}
}

func TestLoadCorruptFileIsLeftInPlace(t *testing.T) {
	s, path := newTestStore(t)
	os.MkdirAll(filepath.Dir(path), 0700)
	os.WriteFile(path, []byte("garbage"), 0600)

	s.Load()

	data, _ := os.ReadFile(path)
	if string(data) != "garbage" {
		t.Errorf("corrupt index was modified: %q", data)
	}
}

func TestLoadDropsDuplicates(t *testing.T) {
	s, path := newTestStore(t)
	os.MkdirAll(filepath.Dir(path), 0700)
	os.WriteFile(path, []byte(`["github", "aws", "github"]`), 0600)

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"github", "aws"}) {
		t.Errorf("Load = %v, want [github aws]", got)
	}
}

func TestSaveFailsWhenParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "miso")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	s := NewFileStore(filepath.Join(blocker, FileName))

	err := s.Save([]string{"github"})
	if !errors.Is(err, ErrWrite) {
		t.Errorf("expected ErrWrite, got %v", err)
	}
}

func TestMemoryStoreCopies(t *testing.T) {
	s := NewMemoryStore("a", "b", "a")

	got, _ := s.Load()
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Load = %v, want [a b]", got)
	}

	got[0] = "mutated"
	again, _ := s.Load()
	if again[0] != "a" {
		t.Error("mutating a loaded slice changed the store")
	}
}

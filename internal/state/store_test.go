package state

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestStoreLoadMissingWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "save_file.txt")
	store := NewStore(path)

	st, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := pretty.Diff(Default(), st); len(diff) > 0 {
		t.Errorf("Load() of missing record:\n%s", strings.Join(diff, "\n"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("record was not created: %v", err)
	}
	if !strings.HasPrefix(string(data), "scene=START\n") {
		t.Errorf("record = %q, want default record", data)
	}
}

func TestStoreLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save_file.txt")
	if err := os.WriteFile(path, []byte("\n  \n"), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := NewStore(path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if st.Scene != SceneStart {
		t.Errorf("Scene = %s, want %s", st.Scene, SceneStart)
	}
}

func TestStoreSaveLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save_file.txt"))
	want := &GameState{
		Scene:      ScenePlay,
		Mode:       ModeCombine,
		WithTimer:  Bool(true),
		TimeLeft:   Int(42),
		CharSeq:    "bdee",
		Retries:    1,
		Score:      20,
		ValidWords: []string{"bed", "bee"},
		UsedWords:  []string{},
	}

	if err := store.Save(want); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("Save/Load mismatch:\n%s", strings.Join(diff, "\n"))
	}

	entries, _ := os.ReadDir(filepath.Dir(store.Path()))
	if len(entries) != 1 {
		t.Errorf("directory has %d entries after Save, want only the record", len(entries))
	}
}

func TestStoreStrictBool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save_file.txt")
	st := Default()
	st.WithTimer = Bool(false)
	if err := NewStore(path).Save(st); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	legacy, _ := NewStore(path).Load()
	if legacy.WithTimer == nil || !*legacy.WithTimer {
		t.Errorf("legacy Load() WithTimer = %v, want true", legacy.WithTimer)
	}

	strict, _ := NewStore(path, WithStrictBool(true)).Load()
	if strict.WithTimer == nil || *strict.WithTimer {
		t.Errorf("strict Load() WithTimer = %v, want false", strict.WithTimer)
	}
}

func TestStoreLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save_file.txt")
	if err := os.WriteFile(path, []byte("scene=PLAY\nretries=lots\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := NewStore(path).Load()
	if !errors.Is(err, ErrMalformedSaveRecord) {
		t.Errorf("Load() error = %v, want ErrMalformedSaveRecord", err)
	}
	if st == nil || st.Scene != SceneStart {
		t.Errorf("Load() state = %v, want defaults", st)
	}
}

func TestStoreReset(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "save_file.txt"))
	st := Default()
	st.Score = 99
	st.UsedWords = []string{"cat"}
	store.Save(st)

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	got, _ := store.Load()
	if got.Score != 0 || len(got.UsedWords) != 0 {
		t.Errorf("after Reset() state = %# v, want defaults", pretty.Formatter(got))
	}
}

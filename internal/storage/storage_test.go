package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/nikbrunner/olm/internal/model"
	"github.com/nikbrunner/olm/internal/storage"
)

func TestTitleMapStorage_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "onion_links.json")

	store := model.NewStore(true)
	store.Add("Market", "http://a.onion")
	store.Add("Forum", "http://b.onion")

	s := storage.NewTitleMapStorage(path)
	if err := s.Save(store); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if !loaded.UniqueTitles {
		t.Error("titlemap store should have unique titles")
	}
	// Keys come back sorted.
	assert.DeepEqual(t, loaded.Titles(), []string{"Forum", "Market"})
	assert.Equal(t, loaded.Get("Market").URL, "http://a.onion")
}

func TestTitleMapStorage_FileShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onion_links.json")

	store := model.NewStore(true)
	store.Add("Market", "http://a.onion")

	s := storage.NewTitleMapStorage(path)
	assert.NilError(t, s.Save(store))

	data, err := os.ReadFile(path)
	assert.NilError(t, err)

	want := "{\n  \"Market\": {\n    \"title\": \"Market\",\n    \"url\": \"http://a.onion\"\n  }\n}"
	assert.Equal(t, strings.TrimSpace(string(data)), want)
}

func TestListStorage_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")

	store := model.NewStore(false)
	store.Add("Zeta", "http://z.onion")
	store.Add("Alpha", "http://a.onion")
	store.Add("Zeta", "http://z2.onion")

	s := storage.NewListStorage(path)
	assert.NilError(t, s.Save(store))

	loaded, err := s.Load()
	assert.NilError(t, err)

	assert.Assert(t, !loaded.UniqueTitles)
	// Insertion order and duplicates survive.
	assert.DeepEqual(t, loaded.Titles(), []string{"Zeta", "Alpha", "Zeta"})
	assert.Equal(t, loaded.Links[2].URL, "http://z2.onion")
}

func TestListStorage_FileShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")

	store := model.NewStore(false)
	store.Add("Market", "http://a.onion")

	assert.NilError(t, storage.NewListStorage(path).Save(store))

	data, err := os.ReadFile(path)
	assert.NilError(t, err)

	want := "[\n  {\n    \"name\": \"Market\",\n    \"url\": \"http://a.onion\"\n  }\n]"
	assert.Equal(t, strings.TrimSpace(string(data)), want)
}

func TestJSONStorage_LoadAssignsIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookmarks.json")
	content := `[{"name": "A", "url": "u"}, {"name": "A", "url": "u"}]`
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))

	loaded, err := storage.NewListStorage(path).Load()
	assert.NilError(t, err)
	assert.Equal(t, loaded.Len(), 2)
	assert.Assert(t, loaded.Links[0].ID != "")
	assert.Assert(t, loaded.Links[0].ID != loaded.Links[1].ID)
}

func TestJSONStorage_LoadNonexistent(t *testing.T) {
	tmpDir := t.TempDir()

	for _, s := range []storage.Storage{
		storage.NewTitleMapStorage(filepath.Join(tmpDir, "missing.json")),
		storage.NewListStorage(filepath.Join(tmpDir, "missing-list.json")),
	} {
		store, err := s.Load()
		if err != nil {
			t.Fatalf("expected no error for missing file, got: %v", err)
		}
		if store.Len() != 0 {
			t.Error("expected empty store for missing file")
		}
	}
}

func TestJSONStorage_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onion_links.json")
	assert.NilError(t, os.WriteFile(path, []byte("  \n"), 0644))

	store, err := storage.NewTitleMapStorage(path).Load()
	assert.NilError(t, err)
	assert.Equal(t, store.Len(), 0)
}

func TestJSONStorage_CorruptFileIsQuarantined(t *testing.T) {
	tests := []struct {
		name string
		open func(string) storage.Storage
	}{
		{"titlemap", func(p string) storage.Storage { return storage.NewTitleMapStorage(p) }},
		{"list", func(p string) storage.Storage { return storage.NewListStorage(p) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "links.json")
			assert.NilError(t, os.WriteFile(path, []byte("{not json"), 0644))

			store, err := tt.open(path).Load()

			var corrupt *storage.CorruptError
			assert.Assert(t, errors.As(err, &corrupt), "got %v", err)
			assert.Equal(t, corrupt.Path, path)
			assert.Assert(t, store != nil)
			assert.Equal(t, store.Len(), 0)

			// Original content preserved next to the store path.
			assert.Assert(t, strings.HasPrefix(corrupt.BackupPath, path+".corrupt-"))
			data, err := os.ReadFile(corrupt.BackupPath)
			assert.NilError(t, err)
			assert.Equal(t, string(data), "{not json")

			_, err = os.Stat(path)
			assert.Assert(t, errors.Is(err, os.ErrNotExist))
		})
	}
}

func TestJSONStorage_WrongShapeIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "onion_links.json")
	// A list file read as a title map.
	assert.NilError(t, os.WriteFile(path, []byte(`[{"name":"A","url":"u"}]`), 0644))

	_, err := storage.NewTitleMapStorage(path).Load()
	var corrupt *storage.CorruptError
	assert.Assert(t, errors.As(err, &corrupt))
}

func TestJSONStorage_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "bookmarks.json")

	s := storage.NewListStorage(path)
	if err := s.Save(model.NewStore(false)); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("file was not created in nested directory")
	}
}

func TestJSONStorage_RepeatedCorruptionKeepsEveryBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "links.json")
	s := storage.NewListStorage(path)

	var backups []string
	for _, content := range []string{"{first", "{second", "{third"} {
		assert.NilError(t, os.WriteFile(path, []byte(content), 0644))

		_, err := s.Load()
		var corrupt *storage.CorruptError
		assert.Assert(t, errors.As(err, &corrupt), "got %v", err)
		assert.Assert(t, corrupt.BackupPath != "")
		backups = append(backups, corrupt.BackupPath)
	}

	// All three land within the same second in practice.
	assert.Assert(t, backups[0] != backups[1] && backups[1] != backups[2] && backups[0] != backups[2], "%v", backups)
	for i, want := range []string{"{first", "{second", "{third"} {
		data, err := os.ReadFile(backups[i])
		assert.NilError(t, err)
		assert.Equal(t, string(data), want)
	}
}

func TestJSONStorage_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "onion_links.json")

	store := model.NewStore(true)
	store.Add("Market", "http://a.onion")
	s := storage.NewTitleMapStorage(path)
	assert.NilError(t, s.Save(store))
	assert.NilError(t, s.Save(store))

	entries, err := os.ReadDir(dir)
	assert.NilError(t, err)
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].Name(), "onion_links.json")
}

func TestJSONStorage_SaveFailsWhenParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	assert.NilError(t, os.WriteFile(blocker, nil, 0644))

	s := storage.NewTitleMapStorage(filepath.Join(blocker, "onion_links.json"))
	err := s.Save(model.NewStore(true))
	assert.Assert(t, err != nil)
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"titlemap", "list", "sqlite"} {
		f, err := storage.ParseFormat(name)
		assert.NilError(t, err)
		assert.Equal(t, string(f), name)
	}

	_, err := storage.ParseFormat("xml")
	assert.Assert(t, errors.Is(err, storage.ErrUnknownFormat))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := storage.Open(storage.Options{Format: storage.FormatList, Path: filepath.Join(dir, "l.json")})
	assert.NilError(t, err)
	assert.Equal(t, s.Path(), filepath.Join(dir, "l.json"))
	assert.NilError(t, s.Close())

	s, err = storage.Open(storage.Options{Format: storage.FormatSQLite, Path: filepath.Join(dir, "l.db"), UniqueTitles: true})
	assert.NilError(t, err)
	defer s.Close()
	_, ok := s.(*storage.SQLiteStorage)
	assert.Assert(t, ok)

	_, err = storage.Open(storage.Options{Format: "yaml"})
	assert.Assert(t, errors.Is(err, storage.ErrUnknownFormat))
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, storage.DefaultPath(storage.FormatTitleMap), "onion_links.json")
	assert.Assert(t, is.Contains(storage.DefaultPath(storage.FormatList), filepath.Join("olm", "bookmarks.json")))
	assert.Assert(t, is.Contains(storage.DefaultPath(storage.FormatSQLite), filepath.Join("olm", "links.db")))
}

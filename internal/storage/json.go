package storage

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/nikbrunner/olm/internal/model"
)

// titleMapRecord is one value of the title-keyed JSON object.
type titleMapRecord struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// listRecord is one element of the JSON array shape.
type listRecord struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TitleMapStorage implements Storage using a JSON object keyed by title.
// Stores loaded from it always have unique titles.
type TitleMapStorage struct {
	path string
}

// NewTitleMapStorage creates a new TitleMapStorage with the given file path.
func NewTitleMapStorage(path string) *TitleMapStorage {
	return &TitleMapStorage{path: path}
}

// Path returns the storage file path.
func (s *TitleMapStorage) Path() string {
	return s.path
}

// Close is a no-op for file storage.
func (s *TitleMapStorage) Close() error {
	return nil
}

// Load reads the store from the JSON file.
// Returns an empty store if the file doesn't exist. Keys load in sorted
// order since JSON objects carry no order.
func (s *TitleMapStorage) Load() (*model.Store, error) {
	store := model.NewStore(true)

	data, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return store, nil
	}

	var records map[string]titleMapRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return store, quarantine(s.path, err)
	}

	titles := make([]string, 0, len(records))
	for title := range records {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	for _, title := range titles {
		// The key is the identity; the record's own title is display only
		// and matches the key in every file we write.
		store.Links = append(store.Links, model.Link{
			ID:    model.GenerateUUID(),
			Title: title,
			URL:   records[title].URL,
		})
	}

	return store, nil
}

// Save writes the store to the JSON file.
// Later links win if the store somehow holds duplicate titles.
func (s *TitleMapStorage) Save(store *model.Store) error {
	records := make(map[string]titleMapRecord, len(store.Links))
	for _, l := range store.Links {
		records[l.Title] = titleMapRecord{Title: l.Title, URL: l.URL}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(s.path, data)
}

// ListStorage implements Storage using a JSON array of {name, url}.
type ListStorage struct {
	path string
}

// NewListStorage creates a new ListStorage with the given file path.
func NewListStorage(path string) *ListStorage {
	return &ListStorage{path: path}
}

// Path returns the storage file path.
func (s *ListStorage) Path() string {
	return s.path
}

// Close is a no-op for file storage.
func (s *ListStorage) Close() error {
	return nil
}

// Load reads the store from the JSON file, preserving order.
// Returns an empty store if the file doesn't exist.
func (s *ListStorage) Load() (*model.Store, error) {
	store := model.NewStore(false)

	data, err := readFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return store, nil
	}

	var records []listRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return store, quarantine(s.path, err)
	}

	for _, r := range records {
		store.Links = append(store.Links, model.Link{
			ID:    model.GenerateUUID(),
			Title: r.Name,
			URL:   r.URL,
		})
	}

	return store, nil
}

// Save writes the store to the JSON file.
// Creates the directory if it doesn't exist.
func (s *ListStorage) Save(store *model.Store) error {
	records := make([]listRecord, len(store.Links))
	for i, l := range store.Links {
		records[i] = listRecord{Name: l.Title, URL: l.URL}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	return writeFileAtomic(s.path, data)
}

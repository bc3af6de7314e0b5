// Package links is the bookmark store as the front-ends see it: an
// in-memory collection that is written back in full after every change.
package links

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nikbrunner/olm/internal/model"
	"github.com/nikbrunner/olm/internal/storage"
)

// ErrSaveFailed wraps a storage error from a flush. The change it was
// flushing stays in memory.
var ErrSaveFailed = errors.New("save failed")

// Service owns the loaded collection and its backend.
// It is not safe for concurrent use; both UIs call it from one goroutine.
type Service struct {
	store   *model.Store
	backend storage.Storage
	logger  *slog.Logger

	strictOnion bool
	dirty       bool
}

// Params holds parameters for Open.
type Params struct {
	Storage     storage.Storage
	Logger      *slog.Logger // optional, discards if nil
	OnConflict  model.ConflictPolicy
	StrictOnion bool
}

// Open loads the collection. A corrupt file is logged and the service
// starts empty; any other load error is returned.
func Open(params Params) (*Service, error) {
	logger := params.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	store, err := params.Storage.Load()
	if err != nil {
		var corrupt *storage.CorruptError
		if !errors.As(err, &corrupt) {
			return nil, fmt.Errorf("load %s: %w", params.Storage.Path(), err)
		}
		logger.Warn("store file unreadable, starting empty",
			"path", corrupt.Path,
			"backup", corrupt.BackupPath,
			"err", corrupt.Err)
	}
	store.OnConflict = params.OnConflict

	logger.Debug("store loaded", "path", params.Storage.Path(), "links", store.Len())

	return &Service{
		store:       store,
		backend:     params.Storage,
		logger:      logger,
		strictOnion: params.StrictOnion,
	}, nil
}

// OpenConfigured opens the backend cfg selects and loads it with cfg's
// conflict policy and onion check. The backend is closed if loading fails.
func OpenConfigured(cfg *storage.Config, logger *slog.Logger) (*Service, error) {
	policy, err := cfg.ConflictPolicy()
	if err != nil {
		return nil, err
	}

	backend, err := storage.Open(cfg.StorageOptions())
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	svc, err := Open(Params{
		Storage:     backend,
		Logger:      logger,
		OnConflict:  policy,
		StrictOnion: cfg.StrictOnion,
	})
	if err != nil {
		return nil, errors.Join(err, backend.Close())
	}
	return svc, nil
}

// List returns a copy of all links in store order.
func (s *Service) List() []model.Link {
	return s.store.Clone().Links
}

// Len returns the number of links.
func (s *Service) Len() int {
	return s.store.Len()
}

// Find returns the first link with the given title.
func (s *Service) Find(title string) (model.Link, bool) {
	if l := s.store.Get(title); l != nil {
		return *l, true
	}
	return model.Link{}, false
}

// Get returns the link with the given ID.
func (s *Service) Get(id string) (model.Link, bool) {
	if l := s.store.GetByID(id); l != nil {
		return *l, true
	}
	return model.Link{}, false
}

// Titles returns all titles in store order.
func (s *Service) Titles() []string {
	return s.store.Titles()
}

// UniqueTitles reports whether titles are keys in this store.
func (s *Service) UniqueTitles() bool {
	return s.store.UniqueTitles
}

// Path returns where the collection is persisted.
func (s *Service) Path() string {
	return s.backend.Path()
}

// Dirty reports whether the last flush failed.
func (s *Service) Dirty() bool {
	return s.dirty
}

// Add inserts a link and saves. Empty input is skipped: the returned
// bool is false and nothing is written.
func (s *Service) Add(title, url string) (model.Link, bool, error) {
	if title != "" && url != "" {
		if err := s.checkURL(url); err != nil {
			return model.Link{}, false, err
		}
	}

	link, ok := s.store.Add(title, url)
	if !ok {
		s.logger.Debug("add skipped, empty field")
		return model.Link{}, false, nil
	}
	s.logger.Debug("link added", "title", title, "url", url)

	return link, true, s.Save()
}

// Edit renames and re-points the first link titled oldTitle, then saves.
func (s *Service) Edit(oldTitle, newTitle, newURL string) (model.Link, error) {
	if l := s.store.Get(oldTitle); l != nil {
		return s.EditByID(l.ID, newTitle, newURL)
	}
	return model.Link{}, fmt.Errorf("%q: %w", oldTitle, model.ErrLinkNotFound)
}

// EditByID updates the link with the given ID, then saves.
func (s *Service) EditByID(id, newTitle, newURL string) (model.Link, error) {
	if newURL != "" {
		if err := s.checkURL(newURL); err != nil {
			return model.Link{}, err
		}
	}

	before := s.store.Len()
	link, err := s.store.EditByID(id, newTitle, newURL)
	if err != nil {
		if errors.Is(err, model.ErrTitleConflict) {
			return model.Link{}, fmt.Errorf("%q: %w", newTitle, err)
		}
		return model.Link{}, err
	}
	if dropped := before - s.store.Len(); dropped > 0 {
		s.logger.Warn("rename replaced an existing link", "title", newTitle)
	}
	s.logger.Debug("link edited", "id", id, "title", newTitle, "url", newURL)

	return link, s.Save()
}

// Delete removes the first link with the given title and saves.
// Deleting a missing title is a no-op that returns false and writes nothing.
func (s *Service) Delete(title string) (bool, error) {
	if !s.store.Delete(title) {
		return false, nil
	}
	s.logger.Debug("link deleted", "title", title)
	return true, s.Save()
}

// DeleteByID removes the link with the given ID and saves.
func (s *Service) DeleteByID(id string) (bool, error) {
	if !s.store.DeleteByID(id) {
		return false, nil
	}
	s.logger.Debug("link deleted", "id", id)
	return true, s.Save()
}

// Import merges links into the store with a single save at the end.
// A link is skipped when its URL is already stored, when either field
// is empty, or, in stores with unique titles, when its title is taken.
func (s *Service) Import(incoming []model.Link) (added, skipped int, err error) {
	for _, l := range incoming {
		if l.Title == "" || l.URL == "" || s.store.HasURL(l.URL) {
			skipped++
			continue
		}
		if s.store.UniqueTitles && s.store.Get(l.Title) != nil {
			skipped++
			continue
		}
		if s.checkURL(l.URL) != nil {
			skipped++
			continue
		}
		s.store.Add(l.Title, l.URL)
		added++
	}

	s.logger.Debug("import merged", "added", added, "skipped", skipped)
	if added == 0 {
		return 0, skipped, nil
	}
	return added, skipped, s.Save()
}

// Save writes the whole collection. On failure the in-memory state is
// kept and Dirty reports true until a later Save succeeds.
func (s *Service) Save() error {
	if err := s.backend.Save(s.store); err != nil {
		s.dirty = true
		s.logger.Warn("save failed", "path", s.backend.Path(), "err", err)
		return fmt.Errorf("%w: %s: %w", ErrSaveFailed, s.backend.Path(), err)
	}
	s.dirty = false
	return nil
}

// Close releases the backend.
func (s *Service) Close() error {
	return s.backend.Close()
}

func (s *Service) checkURL(url string) error {
	if !s.strictOnion {
		return nil
	}
	if err := model.ValidateOnionURL(url); err != nil {
		return fmt.Errorf("%q: %w", url, err)
	}
	return nil
}

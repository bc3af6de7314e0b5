package model

// ConflictPolicy decides what a rename does when the new title is
// already held by a different link in a store with unique titles.
type ConflictPolicy int

const (
	// ConflictReject refuses the rename with ErrTitleConflict.
	ConflictReject ConflictPolicy = iota
	// ConflictOverwrite drops the link holding the title (last write wins).
	ConflictOverwrite
)

// String returns the config spelling of the policy.
func (p ConflictPolicy) String() string {
	if p == ConflictOverwrite {
		return "overwrite"
	}
	return "reject"
}

// Store holds all links in insertion order.
type Store struct {
	Links []Link

	// UniqueTitles makes the title the lookup key: adding an existing
	// title replaces that link's URL instead of appending a duplicate.
	UniqueTitles bool

	OnConflict ConflictPolicy
}

// NewStore creates an empty Store with an initialized slice.
func NewStore(uniqueTitles bool) *Store {
	return &Store{
		Links:        []Link{},
		UniqueTitles: uniqueTitles,
	}
}

// Len returns the number of links.
func (s *Store) Len() int {
	return len(s.Links)
}

// Titles returns the link titles in store order.
func (s *Store) Titles() []string {
	titles := make([]string, len(s.Links))
	for i, l := range s.Links {
		titles[i] = l.Title
	}
	return titles
}

// Get finds the first link with the given title, returns nil if not found.
func (s *Store) Get(title string) *Link {
	if i := s.indexOfTitle(title); i >= 0 {
		return &s.Links[i]
	}
	return nil
}

// GetByID finds a link by ID, returns nil if not found.
func (s *Store) GetByID(id string) *Link {
	if i := s.indexOfID(id); i >= 0 {
		return &s.Links[i]
	}
	return nil
}

// Add inserts a link. It returns false without touching the store when
// title or url is empty.
func (s *Store) Add(title, url string) (Link, bool) {
	if title == "" || url == "" {
		return Link{}, false
	}

	if s.UniqueTitles {
		if i := s.indexOfTitle(title); i >= 0 {
			s.Links[i].URL = url
			return s.Links[i], true
		}
	}

	link := NewLink(NewLinkParams{Title: title, URL: url})
	s.Links = append(s.Links, link)
	return link, true
}

// Edit renames and re-points the first link titled oldTitle.
func (s *Store) Edit(oldTitle, newTitle, newURL string) (Link, error) {
	link := s.Get(oldTitle)
	if link == nil {
		return Link{}, ErrLinkNotFound
	}
	return s.EditByID(link.ID, newTitle, newURL)
}

// EditByID sets title and URL of the link with the given ID.
// The link keeps its ID and position.
func (s *Store) EditByID(id, newTitle, newURL string) (Link, error) {
	if newTitle == "" || newURL == "" {
		return Link{}, ErrEmptyField
	}

	i := s.indexOfID(id)
	if i < 0 {
		return Link{}, ErrLinkNotFound
	}

	if s.UniqueTitles && s.Links[i].Title != newTitle {
		if j := s.indexOfTitle(newTitle); j >= 0 {
			if s.OnConflict != ConflictOverwrite {
				return Link{}, ErrTitleConflict
			}
			s.removeAt(j)
			if j < i {
				i--
			}
		}
	}

	s.Links[i].Title = newTitle
	s.Links[i].URL = newURL
	return s.Links[i], nil
}

// Delete removes the first link with the given title.
// Returns false if no such link exists.
func (s *Store) Delete(title string) bool {
	i := s.indexOfTitle(title)
	if i < 0 {
		return false
	}
	s.removeAt(i)
	return true
}

// DeleteByID removes the link with the given ID.
// Returns false if no such link exists.
func (s *Store) DeleteByID(id string) bool {
	i := s.indexOfID(id)
	if i < 0 {
		return false
	}
	s.removeAt(i)
	return true
}

// HasURL returns true if any link points to url.
func (s *Store) HasURL(url string) bool {
	for _, l := range s.Links {
		if l.URL == url {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	links := make([]Link, len(s.Links))
	copy(links, s.Links)
	return &Store{
		Links:        links,
		UniqueTitles: s.UniqueTitles,
		OnConflict:   s.OnConflict,
	}
}

func (s *Store) indexOfTitle(title string) int {
	for i := range s.Links {
		if s.Links[i].Title == title {
			return i
		}
	}
	return -1
}

func (s *Store) indexOfID(id string) int {
	for i := range s.Links {
		if s.Links[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) removeAt(i int) {
	s.Links = append(s.Links[:i], s.Links[i+1:]...)
}

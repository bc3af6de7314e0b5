package model

// Link represents a saved onion-service link.
type Link struct {
	ID    string // in-memory identity, never persisted
	Title string
	URL   string
}

// NewLinkParams holds parameters for creating a new Link.
type NewLinkParams struct {
	Title string
	URL   string
}

// NewLink creates a Link with a generated UUID.
func NewLink(params NewLinkParams) Link {
	return Link{
		ID:    generateUUID(),
		Title: params.Title,
		URL:   params.URL,
	}
}

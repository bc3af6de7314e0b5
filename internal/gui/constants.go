package gui

// Window
const (
	WindowTitle          = "Onion Link Manager"
	WindowWidth  float32 = 720
	WindowHeight float32 = 480
)

// Labels
const (
	TitlePlaceholder = "Title"
	URLPlaceholder   = "URL"

	AddLabel    = "Add"
	EditLabel   = "Edit"
	DeleteLabel = "Delete"
	SaveLabel   = "Save"
	CancelLabel = "Cancel"

	RetryTitle = "Save failed"
)

// Status messages
const (
	StatusCopied = "Copied %s"
	StatusSaved  = "Saved"
)

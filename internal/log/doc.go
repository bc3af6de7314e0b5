// Package log builds the slog loggers used by olm.
//
// Stored links are private to the user, so every logger returned here
// masks onion host names before a record reaches its writer:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Warn("save failed", "url", link.URL)
//	// url=http://pg6mmj***.onion
//
// The TUI and GUI write to a file under the XDG state directory instead
// of the terminal; see OpenLogFile.
package log

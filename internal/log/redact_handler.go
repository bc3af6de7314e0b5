package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/adrg/xdg"
)

// onionPattern matches v2 and v3 service addresses, with any subdomain
// labels folded into the match.
var onionPattern = regexp.MustCompile(`(?i)\b(?:[a-z0-9-]+\.)*([a-z2-7]{16}|[a-z2-7]{56})\.onion\b`)

// EnvVerbose enables debug logging in front-ends without a --verbose flag.
const EnvVerbose = "OLM_VERBOSE"

// visiblePrefix is how many address characters survive masking.
const visiblePrefix = 6

// MaskSuffix replaces the hidden part of an address.
const MaskSuffix = "***"

// RedactHandler wraps an slog.Handler and masks onion addresses in the
// message and in every string attribute.
type RedactHandler struct {
	handler slog.Handler
}

// NewRedactHandler wraps handler. A nil handler wraps slog.Default().Handler().
func NewRedactHandler(handler slog.Handler) *RedactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RedactHandler{handler: handler}
}

// Enabled delegates to the wrapped handler.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle masks the record and passes it on.
func (h *RedactHandler) Handle(ctx context.Context, r slog.Record) error {
	masked := slog.NewRecord(r.Time, r.Level, MaskOnions(r.Message), r.PC)
	r.Attrs(func(a slog.Attr) bool {
		masked.AddAttrs(maskAttr(a))
		return true
	})
	return h.handler.Handle(ctx, masked)
}

// WithAttrs masks attrs before handing them to the wrapped handler.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		masked[i] = maskAttr(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(masked)}
}

func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name)}
}

func maskAttr(a slog.Attr) slog.Attr {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindGroup:
		attrs := v.Group()
		masked := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			masked[i] = maskAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(masked...)}
	case slog.KindString:
		return slog.String(a.Key, MaskOnions(v.String()))
	case slog.KindAny:
		// Errors carry paths and URLs in their text.
		if err, ok := v.Any().(error); ok {
			return slog.String(a.Key, MaskOnions(err.Error()))
		}
	}
	return a
}

// MaskOnions replaces every onion address in s with its first few
// characters followed by MaskSuffix: "abcdef***.onion".
func MaskOnions(s string) string {
	return onionPattern.ReplaceAllStringFunc(s, func(host string) string {
		m := onionPattern.FindStringSubmatch(host)
		return m[1][:visiblePrefix] + MaskSuffix + ".onion"
	})
}

// NewLogger creates a text logger writing to w at Warn level, or Debug
// when verbose, with onion addresses masked.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	return slog.New(NewRedactHandler(slog.NewTextHandler(w, opts)))
}

// DefaultLogFilePath returns $XDG_STATE_HOME/olm/olm.log.
func DefaultLogFilePath() string {
	return filepath.Join(xdg.StateHome, "olm", "olm.log")
}

// OpenLogFile opens path for appending, creating its directory.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes engine events to an slog.Logger.
// Useful for development when you want to see mixer activity in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
// Error events are written at Warn level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.Int("card", event.Card),
		slog.String("category", event.Category.String()),
	}

	// Add type-specific attributes
	switch {
	case event.Write != nil:
		attrs = append(attrs,
			slog.String("control", event.Write.Control),
			slog.Int("value", event.Write.Value),
			slog.Uint64("num_values", uint64(event.Write.NumValues)),
		)
		if event.Write.Failed > 0 {
			attrs = append(attrs, slog.Uint64("failed", uint64(event.Write.Failed)))
		}
	case event.Apply != nil:
		if event.Apply.Reset {
			attrs = append(attrs, slog.Bool("reset", true))
		} else {
			attrs = append(attrs, slog.String("path", event.Apply.Path))
		}
		attrs = append(attrs, slog.Int("settings", event.Apply.Settings))
	case event.Commit != nil:
		attrs = append(attrs,
			slog.Int("changed", event.Commit.Changed),
			slog.Int("failed", event.Commit.Failed),
		)
	case event.Load != nil:
		attrs = append(attrs,
			slog.String("file", event.Load.File),
			slog.Int("paths", event.Load.Paths),
			slog.Int("controls", event.Load.Controls),
			slog.Int("skipped", event.Load.Skipped),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("op", event.Error.Op),
			slog.String("name", event.Error.Name),
			slog.String("error", event.Error.Message),
		)
	}

	level := slog.LevelDebug
	if event.Category == CategoryError {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "mixer event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)

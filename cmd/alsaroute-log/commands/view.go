// Package commands implements the alsaroute-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alsaroute/alsaroute-go/pkg/log"
)

// BuildFilter assembles a log.Filter from command-line flag values.
// Empty strings leave the corresponding criterion unset.
func BuildFilter(session, category, control, path, timeStart, timeEnd string) (log.Filter, error) {
	filter := log.Filter{
		SessionID: session,
		Control:   control,
		Path:      path,
	}

	if category != "" {
		c, err := ParseCategoryFlag(category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}

	if timeStart != "" {
		t, err := time.Parse(time.RFC3339, timeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if timeEnd != "" {
		t, err := time.Parse(time.RFC3339, timeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}

// ParseCategoryFlag parses a category flag value.
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "write":
		return log.CategoryWrite, nil
	case "apply":
		return log.CategoryApply, nil
	case "commit":
		return log.CategoryCommit, nil
	case "load":
		return log.CategoryLoad, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("unknown category: %s (valid: write, apply, commit, load, error)", s)
	}
}

// RunView reads the log file and prints matching events in
// human-readable format.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] card CATEGORY
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [session:%s] card%d %s\n",
		ts, shortenSessionID(event.SessionID), event.Card, event.Category.String())

	switch {
	case event.Write != nil:
		formatWriteDetails(w, event.Write)
	case event.Apply != nil:
		formatApplyDetails(w, event.Apply)
	case event.Commit != nil:
		formatCommitDetails(w, event.Commit)
	case event.Load != nil:
		formatLoadDetails(w, event.Load)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatWriteDetails(w io.Writer, ev *log.WriteEvent) {
	fmt.Fprintf(w, "  Control: %s\n", ev.Control)
	fmt.Fprintf(w, "  Value: %d (x%d)\n", ev.Value, ev.NumValues)
	if ev.Failed > 0 {
		fmt.Fprintf(w, "  Failed: %d\n", ev.Failed)
	}
}

func formatApplyDetails(w io.Writer, ev *log.ApplyEvent) {
	if ev.Reset {
		fmt.Fprintf(w, "  Reset to saved state\n")
	} else {
		fmt.Fprintf(w, "  Path: %s\n", ev.Path)
	}
	fmt.Fprintf(w, "  Settings: %d\n", ev.Settings)
}

func formatCommitDetails(w io.Writer, ev *log.CommitEvent) {
	fmt.Fprintf(w, "  Changed: %d\n", ev.Changed)
	if ev.Failed > 0 {
		fmt.Fprintf(w, "  Failed: %d\n", ev.Failed)
	}
}

func formatLoadDetails(w io.Writer, ev *log.LoadEvent) {
	if ev.File != "" {
		fmt.Fprintf(w, "  File: %s\n", ev.File)
	}
	fmt.Fprintf(w, "  Paths: %d  Controls: %d\n", ev.Paths, ev.Controls)
	if ev.Skipped > 0 {
		fmt.Fprintf(w, "  Skipped: %d\n", ev.Skipped)
	}
}

func formatErrorDetails(w io.Writer, ev *log.ErrorEventData) {
	fmt.Fprintf(w, "  Op: %s\n", ev.Op)
	if ev.Name != "" {
		fmt.Fprintf(w, "  Name: %s\n", ev.Name)
	}
	fmt.Fprintf(w, "  Error: %s\n", ev.Message)
}

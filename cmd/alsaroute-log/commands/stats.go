package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/alsaroute/alsaroute-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Sessions         map[string]*SessionStats
	WritesByControl  map[string]int
	AppliesByPath    map[string]int
	FailedValues     int
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single engine session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Card      int
	Commits   int
	Resets    int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Sessions:         make(map[string]*SessionStats),
		WritesByControl:  make(map[string]int),
		AppliesByPath:    make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track session stats
		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
				Card:      event.Card,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}

		switch {
		case event.Write != nil:
			stats.WritesByControl[event.Write.Control]++
			stats.FailedValues += int(event.Write.Failed)
		case event.Apply != nil:
			if event.Apply.Reset {
				sess.Resets++
			} else {
				stats.AppliesByPath[event.Apply.Path]++
			}
		case event.Commit != nil:
			sess.Commits++
		case event.Error != nil:
			stats.Errors++
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Routing Engine Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
	}
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryWrite, log.CategoryApply, log.CategoryCommit, log.CategoryLoad, log.CategoryError} {
		if n := stats.EventsByCategory[cat]; n > 0 {
			fmt.Fprintf(w, "  %-7s %d\n", cat.String(), n)
		}
	}
	fmt.Fprintln(w)

	if len(stats.AppliesByPath) > 0 {
		fmt.Fprintln(w, "Applies by Path:")
		for _, name := range sortedKeys(stats.AppliesByPath) {
			fmt.Fprintf(w, "  %-24s %d\n", name, stats.AppliesByPath[name])
		}
		fmt.Fprintln(w)
	}

	if len(stats.WritesByControl) > 0 {
		fmt.Fprintln(w, "Writes by Control:")
		for _, name := range sortedKeys(stats.WritesByControl) {
			fmt.Fprintf(w, "  %-32s %d\n", name, stats.WritesByControl[name])
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	for _, id := range sortedSessionIDs(stats.Sessions) {
		sess := stats.Sessions[id]
		fmt.Fprintf(w, "  %s card%d: %d events, %d commits, %d resets (%s to %s)\n",
			shortenSessionID(id), sess.Card, sess.Events, sess.Commits, sess.Resets,
			sess.FirstSeen.Format(time.RFC3339), sess.LastSeen.Format(time.RFC3339))
	}
	fmt.Fprintln(w)

	if stats.FailedValues > 0 {
		fmt.Fprintf(w, "Failed Backing Values: %d\n", stats.FailedValues)
	}
	fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSessionIDs(m map[string]*SessionStats) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	// Oldest session first
	sort.Slice(ids, func(i, j int) bool {
		return m[ids[i]].FirstSeen.Before(m[ids[j]].FirstSeen)
	})
	return ids
}

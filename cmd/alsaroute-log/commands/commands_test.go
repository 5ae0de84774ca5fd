package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alsaroute/alsaroute-go/pkg/log"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(data)
}

// createTestLogFile writes the events to a temporary log file and
// returns its path.
func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.rlog")

	l, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger: %v", err)
	}
	defer l.Close()

	for _, ev := range events {
		l.Log(ev)
	}
	return path
}

func sampleEvents() []log.Event {
	ts := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	return []log.Event{
		{Timestamp: ts, SessionID: "session-1", Card: 0, Category: log.CategoryLoad,
			Load: &log.LoadEvent{File: "mixer_paths_test.xml", Paths: 2, Controls: 5}},
		{Timestamp: ts.Add(time.Second), SessionID: "session-1", Card: 0, Category: log.CategoryApply,
			Apply: &log.ApplyEvent{Path: "speaker", Settings: 2}},
		{Timestamp: ts.Add(2 * time.Second), SessionID: "session-1", Card: 0, Category: log.CategoryWrite,
			Write: &log.WriteEvent{Control: "Speaker Switch", Value: 1, NumValues: 1}},
		{Timestamp: ts.Add(2 * time.Second), SessionID: "session-1", Card: 0, Category: log.CategoryCommit,
			Commit: &log.CommitEvent{Changed: 2}},
		{Timestamp: ts.Add(3 * time.Second), SessionID: "session-2", Card: 1, Category: log.CategoryError,
			Error: &log.ErrorEventData{Op: "load", Name: "Bad Control", Message: "unknown control"}},
	}
}

func TestViewFormatsEvents(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunView(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"LOAD", "mixer_paths_test.xml",
		"APPLY", "Path: speaker",
		"WRITE", "Control: Speaker Switch",
		"COMMIT", "Changed: 2",
		"ERROR", "unknown control",
		"[session:session-", "card1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestViewAppliesFilter(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	filter, err := BuildFilter("", "error", "", "", "", "")
	if err != nil {
		t.Fatalf("BuildFilter: %v", err)
	}

	var buf bytes.Buffer
	if err := RunView(path, filter, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "ERROR") {
		t.Error("expected the error event in output")
	}
	if strings.Contains(output, "WRITE") {
		t.Error("write events should have been filtered out")
	}
}

func TestBuildFilter(t *testing.T) {
	t.Run("Times", func(t *testing.T) {
		f, err := BuildFilter("session-1", "write", "Speaker Switch", "",
			"2026-08-20T10:00:00Z", "2026-08-20T11:00:00Z")
		if err != nil {
			t.Fatalf("BuildFilter: %v", err)
		}
		if f.SessionID != "session-1" || f.Control != "Speaker Switch" {
			t.Error("string criteria not carried over")
		}
		if f.Category == nil || *f.Category != log.CategoryWrite {
			t.Error("category not parsed")
		}
		if f.TimeStart == nil || f.TimeEnd == nil {
			t.Error("time bounds not parsed")
		}
	})

	t.Run("BadCategory", func(t *testing.T) {
		if _, err := BuildFilter("", "bogus", "", "", "", ""); err == nil {
			t.Error("expected an error for an unknown category")
		}
	})

	t.Run("BadTime", func(t *testing.T) {
		if _, err := BuildFilter("", "", "", "", "yesterday", ""); err == nil {
			t.Error("expected an error for a non-RFC3339 time")
		}
	})
}

func TestExportJSONL(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", out); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data := readFile(t, out)
	lines := strings.Split(strings.TrimSpace(data), "\n")
	if len(lines) != len(sampleEvents()) {
		t.Errorf("got %d JSONL lines, want %d", len(lines), len(sampleEvents()))
	}
	if !strings.Contains(data, "Speaker Switch") {
		t.Error("expected control name in JSONL output")
	}
}

func TestExportCSV(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", out); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data := readFile(t, out)
	lines := strings.Split(strings.TrimSpace(data), "\n")
	// header plus one row per event
	if len(lines) != len(sampleEvents())+1 {
		t.Errorf("got %d CSV lines, want %d", len(lines), len(sampleEvents())+1)
	}
	if !strings.HasPrefix(lines[0], "timestamp,session_id,card,category") {
		t.Errorf("unexpected CSV header: %s", lines[0])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	if err := RunExport(path, "xml", ""); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestFilterWritesNewFile(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.rlog")

	var buf bytes.Buffer
	if err := RunFilter(path, out, log.Filter{SessionID: "session-1"}, &buf); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Filtered 4 events") {
		t.Errorf("unexpected summary: %s", buf.String())
	}

	// the output is itself a readable log file
	var viewBuf bytes.Buffer
	if err := RunView(out, log.Filter{}, &viewBuf); err != nil {
		t.Fatalf("RunView on filtered file failed: %v", err)
	}
	if strings.Contains(viewBuf.String(), "session-2") {
		t.Error("filtered file should not contain session-2 events")
	}
}

func TestStats(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"Total Events: 5",
		"Sessions: 2",
		"Applies by Path:",
		"speaker",
		"Writes by Control:",
		"Speaker Switch",
		"Errors: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

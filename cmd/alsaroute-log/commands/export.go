package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/alsaroute/alsaroute-go/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "card", "category", "name", "value", "changed", "failed"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		// Per-category columns: name is the control, path or error
		// subject; value/changed/failed whatever the payload carries.
		var name, value, changed, failed string
		switch {
		case event.Write != nil:
			name = event.Write.Control
			value = strconv.Itoa(event.Write.Value)
			failed = strconv.FormatUint(uint64(event.Write.Failed), 10)
		case event.Apply != nil:
			if event.Apply.Reset {
				name = "<reset>"
			} else {
				name = event.Apply.Path
			}
			value = strconv.Itoa(event.Apply.Settings)
		case event.Commit != nil:
			changed = strconv.Itoa(event.Commit.Changed)
			failed = strconv.Itoa(event.Commit.Failed)
		case event.Load != nil:
			name = event.Load.File
			value = strconv.Itoa(event.Load.Paths)
		case event.Error != nil:
			name = event.Error.Name
			value = event.Error.Message
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			strconv.Itoa(event.Card),
			event.Category.String(),
			name,
			value,
			changed,
			failed,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

package log

import (
	"time"
)

// Event represents a routing engine log event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the engine instance (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Card is the sound card number the engine is bound to.
	Card int `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Write  *WriteEvent     `cbor:"5,keyasint,omitempty"` // Hardware control write
	Apply  *ApplyEvent     `cbor:"6,keyasint,omitempty"` // Path staged (or reset)
	Commit *CommitEvent    `cbor:"7,keyasint,omitempty"` // Commit summary
	Load   *LoadEvent      `cbor:"8,keyasint,omitempty"` // Definitions load summary
	Error  *ErrorEventData `cbor:"9,keyasint,omitempty"` // Errors at any stage
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryWrite indicates a committed hardware control write.
	CategoryWrite Category = 0
	// CategoryApply indicates a path apply or reset being staged.
	CategoryApply Category = 1
	// CategoryCommit indicates a commit summary.
	CategoryCommit Category = 2
	// CategoryLoad indicates a definitions load summary.
	CategoryLoad Category = 3
	// CategoryError indicates an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryWrite:
		return "WRITE"
	case CategoryApply:
		return "APPLY"
	case CategoryCommit:
		return "COMMIT"
	case CategoryLoad:
		return "LOAD"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// WriteEvent captures one committed control write.
type WriteEvent struct {
	// Control is the element name of the written control.
	Control string `cbor:"1,keyasint"`

	// Value is the scalar broadcast to every backing value.
	Value int `cbor:"2,keyasint"`

	// NumValues is the control's backing value count.
	NumValues uint `cbor:"3,keyasint"`

	// Failed is the number of backing values that rejected the write.
	Failed uint `cbor:"4,keyasint,omitempty"`
}

// ApplyEvent captures a path apply or full reset being staged.
type ApplyEvent struct {
	// Path is the applied path name; empty for a reset.
	Path string `cbor:"1,keyasint,omitempty"`

	// Settings is the number of control settings staged.
	Settings int `cbor:"2,keyasint"`

	// Reset marks a full reset to the saved state.
	Reset bool `cbor:"3,keyasint,omitempty"`
}

// CommitEvent summarizes one commit pass.
type CommitEvent struct {
	// Changed is the number of controls whose pending value differed
	// from the last committed value and were written.
	Changed int `cbor:"1,keyasint"`

	// Failed is the number of backing values that rejected a write.
	Failed int `cbor:"2,keyasint,omitempty"`
}

// LoadEvent summarizes one definitions load.
type LoadEvent struct {
	// File is the definitions file, when known.
	File string `cbor:"1,keyasint,omitempty"`

	// Paths is the number of paths loaded.
	Paths int `cbor:"2,keyasint"`

	// Controls is the number of controls enumerated on the card.
	Controls int `cbor:"3,keyasint"`

	// Skipped is the number of tags skipped due to authoring errors.
	Skipped int `cbor:"4,keyasint,omitempty"`
}

// ErrorEventData captures error details.
type ErrorEventData struct {
	// Op is the operation that failed (e.g. "load", "apply", "commit").
	Op string `cbor:"1,keyasint"`

	// Name is the path or control name involved, when known.
	Name string `cbor:"2,keyasint,omitempty"`

	// Message is the error text.
	Message string `cbor:"3,keyasint"`
}

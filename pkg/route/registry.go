package route

import (
	"errors"
	"fmt"

	"github.com/alsaroute/alsaroute-go/pkg/mixer"
)

// Registry errors.
var (
	ErrDeviceUnavailable = errors.New("mixer device unavailable")
)

// ControlState is the cached state of one control: the last value
// committed to hardware, the pending value staged by the most recent
// apply or reset, and the value saved for restoring the original state.
type ControlState struct {
	ctl        mixer.Control
	oldValue   int
	newValue   int
	resetValue int
}

// Control returns the control this state tracks.
func (s *ControlState) Control() mixer.Control { return s.ctl }

// Committed returns the last value written to hardware.
func (s *ControlState) Committed() int { return s.oldValue }

// Pending returns the currently staged value.
func (s *ControlState) Pending() int { return s.newValue }

// Registry is a snapshot of every control on a card, each with its
// cached last-committed and pending values. It is the only component
// that writes to the device after initialization, and it writes a
// control only when its pending value actually differs.
type Registry struct {
	states []ControlState

	// OnWrite, if set, is invoked after every committed control write
	// with the number of backing values that rejected it.
	OnWrite func(ctl mixer.Control, value int, failedValues uint)
}

// NewRegistry enumerates dev's controls and seeds one ControlState per
// control from the live device. Only value index 0 is read; vector
// values are assumed equal.
func NewRegistry(dev mixer.Device) (*Registry, error) {
	if dev == nil {
		return nil, ErrDeviceUnavailable
	}

	n := dev.NumControls()
	states := make([]ControlState, 0, n)
	for i := uint(0); i < n; i++ {
		ctl := dev.Control(i)
		v, err := ctl.Value(0)
		if err != nil {
			return nil, fmt.Errorf("reading control %q: %w", ctl.Name(), err)
		}
		states = append(states, ControlState{ctl: ctl, oldValue: v, newValue: v})
	}
	return &Registry{states: states}, nil
}

// Len returns the number of tracked controls.
func (r *Registry) Len() int { return len(r.states) }

// State returns the state for the control with the given identity, or
// nil if the registry does not track it.
func (r *Registry) State(ctl mixer.Control) *ControlState {
	for i := range r.states {
		if r.states[i].ctl == ctl {
			return &r.states[i]
		}
	}
	return nil
}

// Stage sets the pending value for a control. It reports whether the
// control is tracked; nothing is written to hardware.
func (r *Registry) Stage(ctl mixer.Control, value int) bool {
	s := r.State(ctl)
	if s == nil {
		return false
	}
	s.newValue = value
	return true
}

// Commit writes every control whose pending value differs from the last
// committed value, broadcasting the scalar to all backing values, then
// marks it committed. Untouched controls are never written.
//
// A failed write does not stop the batch: the control is still marked
// committed (re-staging it later retries the write) and the failed
// backing-value count is accumulated.
func (r *Registry) Commit() (changed, failed int) {
	for i := range r.states {
		s := &r.states[i]
		if s.oldValue == s.newValue {
			continue
		}

		var failedValues uint
		for j := uint(0); j < s.ctl.NumValues(); j++ {
			if err := s.ctl.SetValue(j, s.newValue); err != nil {
				failedValues++
			}
		}

		s.oldValue = s.newValue
		changed++
		failed += int(failedValues)

		if r.OnWrite != nil {
			r.OnWrite(s.ctl, s.newValue, failedValues)
		}
	}
	return changed, failed
}

// SnapshotReset saves the current committed value of every control as
// its reset value. Called once, right after the initial load commit, to
// capture the card's boot state for later restoration.
func (r *Registry) SnapshotReset() {
	for i := range r.states {
		r.states[i].resetValue = r.states[i].oldValue
	}
}

// Reset stages the saved reset value on every control. Nothing is
// written until the next Commit.
func (r *Registry) Reset() {
	for i := range r.states {
		r.states[i].newValue = r.states[i].resetValue
	}
}

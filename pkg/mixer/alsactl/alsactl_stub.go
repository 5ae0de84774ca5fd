//go:build !(linux && (amd64 || arm64 || riscv64 || loong64))

package alsactl

import (
	"errors"

	"github.com/alsaroute/alsaroute-go/pkg/mixer"
)

// ErrUnsupported is returned by Open on platforms without the ALSA
// control interface.
var ErrUnsupported = errors.New("alsactl: unsupported platform")

// Device is unavailable on this platform; Open never returns one.
type Device struct{}

// Open fails with ErrUnsupported.
func Open(card int) (*Device, error) {
	return nil, ErrUnsupported
}

// CardName returns an empty string.
func (d *Device) CardName() string { return "" }

// NumControls returns zero.
func (d *Device) NumControls() uint { return 0 }

// Control panics; the platform has no controls.
func (d *Device) Control(index uint) mixer.Control {
	panic("alsactl: unsupported platform")
}

// ControlByName reports no controls.
func (d *Device) ControlByName(name string) (mixer.Control, bool) { return nil, false }

// Close is a no-op.
func (d *Device) Close() error { return nil }

// Compile-time interface satisfaction check.
var _ mixer.Device = (*Device)(nil)

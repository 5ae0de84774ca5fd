// Package mixertest provides a scripted in-memory mixer device for
// testing the routing engine without hardware. The device records every
// backing-value write that reaches it, so tests can assert that commits
// touch exactly the controls they should.
package mixertest

import (
	"errors"
	"fmt"

	"github.com/alsaroute/alsaroute-go/pkg/mixer"
)

// Write records one backing-value write that reached the device.
type Write struct {
	Control string
	Index   uint
	Value   int
}

// Device is an in-memory mixer.Device.
type Device struct {
	controls []*Control

	// Writes records every backing-value write in order.
	Writes []Write

	// Closed reports whether Close was called.
	Closed bool
}

// NewDevice builds a device exposing the given controls, in order.
func NewDevice(controls ...*Control) *Device {
	d := &Device{controls: controls}
	for _, c := range controls {
		c.dev = d
	}
	return d
}

// NumControls returns the number of controls.
func (d *Device) NumControls() uint { return uint(len(d.controls)) }

// Control returns the control at index.
func (d *Device) Control(index uint) mixer.Control { return d.controls[index] }

// ControlByName returns the first control with an exactly matching name.
func (d *Device) ControlByName(name string) (mixer.Control, bool) {
	for _, c := range d.controls {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// Close marks the device closed.
func (d *Device) Close() error {
	d.Closed = true
	return nil
}

// WriteCount returns the total number of recorded backing-value writes.
func (d *Device) WriteCount() int { return len(d.Writes) }

// WritesFor returns the recorded writes for the named control.
func (d *Device) WritesFor(name string) []Write {
	var out []Write
	for _, w := range d.Writes {
		if w.Control == name {
			out = append(out, w)
		}
	}
	return out
}

// ClearWrites forgets all recorded writes.
func (d *Device) ClearWrites() { d.Writes = nil }

// Control is a scripted mixer.Control.
type Control struct {
	dev    *Device
	name   string
	typ    mixer.CtlType
	values []int
	enums  []string

	// FailWrites makes every SetValue fail, for exercising partial
	// commit behavior. Failed writes are still recorded.
	FailWrites bool
}

// NewControl builds a boolean or integer control with numValues backing
// values, all starting at initial.
func NewControl(name string, typ mixer.CtlType, numValues uint, initial int) *Control {
	values := make([]int, numValues)
	for i := range values {
		values[i] = initial
	}
	return &Control{name: name, typ: typ, values: values}
}

// NewEnumControl builds an enumerated control with the given item table
// and one backing value starting at initial.
func NewEnumControl(name string, items []string, initial int) *Control {
	return &Control{
		name:   name,
		typ:    mixer.CtlTypeEnum,
		values: []int{initial},
		enums:  items,
	}
}

// Name returns the control name.
func (c *Control) Name() string { return c.name }

// Type returns the control type.
func (c *Control) Type() mixer.CtlType { return c.typ }

// NumValues returns the backing value count.
func (c *Control) NumValues() uint { return uint(len(c.values)) }

// Value returns the backing value at index.
func (c *Control) Value(index uint) (int, error) {
	if index >= uint(len(c.values)) {
		return 0, fmt.Errorf("control %q: value index %d out of range", c.name, index)
	}
	return c.values[index], nil
}

// SetValue writes the backing value at index, recording the write on the
// device.
func (c *Control) SetValue(index uint, value int) error {
	if c.dev != nil {
		c.dev.Writes = append(c.dev.Writes, Write{Control: c.name, Index: index, Value: value})
	}
	if c.FailWrites {
		return errors.New("write rejected")
	}
	if index >= uint(len(c.values)) {
		return fmt.Errorf("control %q: value index %d out of range", c.name, index)
	}
	c.values[index] = value
	return nil
}

// EnumStrings returns the enum item table.
func (c *Control) EnumStrings() []string { return c.enums }

// SetEnumByString sets the control to the named item.
func (c *Control) SetEnumByString(value string) error {
	for i, s := range c.enums {
		if s == value {
			return c.SetValue(0, i)
		}
	}
	return fmt.Errorf("control %q: no enum item %q", c.name, value)
}

// Compile-time interface satisfaction checks.
var (
	_ mixer.Device  = (*Device)(nil)
	_ mixer.Control = (*Control)(nil)
)

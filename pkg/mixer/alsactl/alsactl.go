//go:build linux && (amd64 || arm64 || riscv64 || loong64)

package alsactl

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/alsaroute/alsaroute-go/pkg/mixer"
)

// Device is an open ALSA control interface for one card.
// It is not safe for concurrent use.
type Device struct {
	fd       int
	card     int
	name     string
	controls []*Ctl
}

// Open opens /dev/snd/controlC<card> and enumerates its control
// elements.
func Open(card int) (*Device, error) {
	path := fmt.Sprintf("/dev/snd/controlC%d", card)
	fd, err := unix.Open(path, unix.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	d := &Device{fd: fd, card: card}

	var info sndCtlCardInfo
	if err := d.ioctl(ioctlCardInfo, unsafe.Pointer(&info)); err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("card info for %s: %w", path, err)
	}
	d.name = cstr(info.Name[:])

	if err := d.enumerate(); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}
	return d, nil
}

// CardName returns the card's short name from the driver.
func (d *Device) CardName() string { return d.name }

// NumControls returns the number of control elements on the card.
func (d *Device) NumControls() uint { return uint(len(d.controls)) }

// Control returns the control at the given index.
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

// Close releases the control device.
func (d *Device) Close() error {
	return unix.Close(d.fd)
}

func (d *Device) ioctl(req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// enumerate loads every element id and its metadata. Enum item tables
// are loaded here too, so lookups later never touch the kernel.
func (d *Device) enumerate() error {
	var list sndCtlElemList
	if err := d.ioctl(ioctlElemList, unsafe.Pointer(&list)); err != nil {
		return fmt.Errorf("counting elements: %w", err)
	}
	if list.Count == 0 {
		return nil
	}

	ids := make([]sndCtlElemId, list.Count)
	list.Space = list.Count
	list.Pids = uint64(uintptr(unsafe.Pointer(&ids[0])))
	err := d.ioctl(ioctlElemList, unsafe.Pointer(&list))
	runtime.KeepAlive(ids)
	if err != nil {
		return fmt.Errorf("listing elements: %w", err)
	}

	d.controls = make([]*Ctl, 0, list.Used)
	for i := uint32(0); i < list.Used; i++ {
		ctl, err := d.loadControl(ids[i])
		if err != nil {
			return err
		}
		d.controls = append(d.controls, ctl)
	}
	return nil
}

func (d *Device) loadControl(id sndCtlElemId) (*Ctl, error) {
	var info sndCtlElemInfo
	info.Id = id
	if err := d.ioctl(ioctlElemInfo, unsafe.Pointer(&info)); err != nil {
		return nil, fmt.Errorf("element info for %q: %w", cstr(id.Name[:]), err)
	}

	ctl := &Ctl{
		dev:   d,
		numid: info.Id.Numid,
		name:  cstr(info.Id.Name[:]),
		typ:   ctlTypeFromKernel(info.Typ),
		count: uint(info.Count),
	}

	if ctl.typ == mixer.CtlTypeEnum {
		items := binary.LittleEndian.Uint32(info.Value[enumItemsOff:])
		ctl.enums = make([]string, 0, items)
		for item := uint32(0); item < items; item++ {
			var ei sndCtlElemInfo
			ei.Id.Numid = ctl.numid
			binary.LittleEndian.PutUint32(ei.Value[enumItemOff:], item)
			if err := d.ioctl(ioctlElemInfo, unsafe.Pointer(&ei)); err != nil {
				return nil, fmt.Errorf("enum item %d of %q: %w", item, ctl.name, err)
			}
			ctl.enums = append(ctl.enums, cstr(ei.Value[enumNameOff:enumNameOff+enumNameLen]))
		}
	}
	return ctl, nil
}

// ctlTypeFromKernel maps a kernel snd_ctl_elem_type_t to the engine's
// control type taxonomy. The two numberings differ: the kernel counts
// from NONE=0 with BOOLEAN=1, the engine from BOOL=0.
func ctlTypeFromKernel(kernel int32) mixer.CtlType {
	switch kernel {
	case elemTypeBoolean:
		return mixer.CtlTypeBool
	case elemTypeInteger:
		return mixer.CtlTypeInt
	case elemTypeEnumerated:
		return mixer.CtlTypeEnum
	case elemTypeBytes:
		return mixer.CtlTypeByte
	case elemTypeIEC958:
		return mixer.CtlTypeIEC958
	case elemTypeInteger64:
		return mixer.CtlTypeInt64
	default:
		return mixer.CtlTypeUnknown
	}
}

// Ctl is one ALSA control element.
type Ctl struct {
	dev   *Device
	numid uint32
	name  string
	typ   mixer.CtlType
	count uint
	enums []string
}

// Name returns the element name.
func (c *Ctl) Name() string { return c.name }

// Type returns the element value type.
func (c *Ctl) Type() mixer.CtlType { return c.typ }

// NumValues returns the backing value count.
func (c *Ctl) NumValues() uint { return c.count }

// EnumStrings returns the enum item table, nil for non-enum elements.
func (c *Ctl) EnumStrings() []string { return c.enums }

// Value reads the current value at index from the kernel.
func (c *Ctl) Value(index uint) (int, error) {
	if index >= c.count {
		return 0, fmt.Errorf("control %q: value index %d out of range", c.name, index)
	}

	ev, err := c.read()
	if err != nil {
		return 0, err
	}
	return c.valueAt(ev, index), nil
}

// SetValue writes a value at index. The element's other values are
// preserved (read-modify-write).
func (c *Ctl) SetValue(index uint, value int) error {
	if index >= c.count {
		return fmt.Errorf("control %q: value index %d out of range", c.name, index)
	}

	ev, err := c.read()
	if err != nil {
		return err
	}
	c.putValueAt(ev, index, value)
	if err := c.dev.ioctl(ioctlElemWrite, unsafe.Pointer(ev)); err != nil {
		return fmt.Errorf("writing %q[%d]: %w", c.name, index, err)
	}
	return nil
}

// SetEnumByString sets an enumerated element by item name.
func (c *Ctl) SetEnumByString(value string) error {
	if c.typ != mixer.CtlTypeEnum {
		return mixer.ErrNotEnum
	}
	for i, s := range c.enums {
		if s == value {
			return c.SetValue(0, i)
		}
	}
	return fmt.Errorf("control %q: no enum item %q", c.name, value)
}

func (c *Ctl) read() (*sndCtlElemValue, error) {
	ev := &sndCtlElemValue{}
	ev.Id.Numid = c.numid
	if err := c.dev.ioctl(ioctlElemRead, unsafe.Pointer(ev)); err != nil {
		return nil, fmt.Errorf("reading %q: %w", c.name, err)
	}
	return ev, nil
}

// valueAt decodes one value from the element value union: long for
// boolean/integer elements, u32 for enumerated ones.
func (c *Ctl) valueAt(ev *sndCtlElemValue, index uint) int {
	switch c.typ {
	case mixer.CtlTypeEnum:
		return int(binary.LittleEndian.Uint32(ev.Value[index*4:]))
	default:
		return int(int64(binary.LittleEndian.Uint64(ev.Value[index*8:])))
	}
}

func (c *Ctl) putValueAt(ev *sndCtlElemValue, index uint, value int) {
	switch c.typ {
	case mixer.CtlTypeEnum:
		binary.LittleEndian.PutUint32(ev.Value[index*4:], uint32(value))
	default:
		binary.LittleEndian.PutUint64(ev.Value[index*8:], uint64(int64(value)))
	}
}

// Compile-time interface satisfaction checks.
var (
	_ mixer.Device  = (*Device)(nil)
	_ mixer.Control = (*Ctl)(nil)
)

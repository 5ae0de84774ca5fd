package mixer

// CtlType identifies the value type of a mixer control. Backends
// translate their native type constants into this taxonomy.
type CtlType int32

const (
	CtlTypeBool   CtlType = 0
	CtlTypeInt    CtlType = 1
	CtlTypeEnum   CtlType = 2
	CtlTypeByte   CtlType = 3
	CtlTypeIEC958 CtlType = 4
	CtlTypeInt64  CtlType = 5

	CtlTypeUnknown CtlType = -1
)

// String returns the control type name.
func (t CtlType) String() string {
	switch t {
	case CtlTypeBool:
		return "BOOL"
	case CtlTypeInt:
		return "INT"
	case CtlTypeEnum:
		return "ENUM"
	case CtlTypeByte:
		return "BYTE"
	case CtlTypeIEC958:
		return "IEC958"
	case CtlTypeInt64:
		return "INT64"
	default:
		return "UNKNOWN"
	}
}

// Control is a single named, typed knob on a codec. Implementations are
// owned by their Device; the routing engine holds them as opaque handles
// and compares them by identity.
type Control interface {
	// Name returns the control's element name.
	Name() string

	// Type returns the control's value type.
	Type() CtlType

	// NumValues returns the number of backing values. Vector-valued
	// controls (e.g. stereo gains) report more than one.
	NumValues() uint

	// Value reads the current value at the given index.
	Value(index uint) (int, error)

	// SetValue writes a value at the given index.
	SetValue(index uint, value int) error

	// EnumStrings returns the item names of an enumerated control,
	// in item order. Non-enum controls return nil.
	EnumStrings() []string

	// SetEnumByString sets an enumerated control by item name.
	SetEnumByString(value string) error
}

// Device is an open mixer control interface for one card.
// A Device is not safe for concurrent use.
type Device interface {
	// NumControls returns the number of controls on the card.
	NumControls() uint

	// Control returns the control at the given index.
	Control(index uint) Control

	// ControlByName returns the first control with an exactly matching
	// name, or false if the card has none.
	ControlByName(name string) (Control, bool)

	// Close releases the device. Controls obtained from the device are
	// invalid afterwards.
	Close() error
}

// EnumIndex resolves an enum item name to its index by exact match over
// the control's item table. An unmatched name resolves to 0.
func EnumIndex(ctl Control, value string) int {
	for i, s := range ctl.EnumStrings() {
		if s == value {
			return i
		}
	}
	return 0
}

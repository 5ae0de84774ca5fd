package mixer

import "errors"

// One-shot control errors.
var (
	ErrUnknownControl = errors.New("no control with that name")
	ErrNotEnum        = errors.New("only enum controls can be set with strings")
)

// SetControlValue writes value to every backing value of the named control.
// It is intended for ad hoc one-off changes on a freshly opened Device and
// bypasses any routing state the caller may hold for the same card.
//
// A write failure on one backing value does not stop the remaining writes;
// the number of failed values is returned together with the last error.
func SetControlValue(dev Device, name string, value int) (failed int, err error) {
	ctl, ok := dev.ControlByName(name)
	if !ok {
		return 0, ErrUnknownControl
	}

	for i := uint(0); i < ctl.NumValues(); i++ {
		if werr := ctl.SetValue(i, value); werr != nil {
			failed++
			err = werr
		}
	}
	return failed, err
}

// SetControlEnum sets the named enumerated control by item name.
// Non-enum controls are rejected with ErrNotEnum.
func SetControlEnum(dev Device, name, value string) error {
	ctl, ok := dev.ControlByName(name)
	if !ok {
		return ErrUnknownControl
	}

	if ctl.Type() != CtlTypeEnum {
		return ErrNotEnum
	}
	return ctl.SetEnumByString(value)
}

package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alsaroute/alsaroute-go/pkg/mixer"
)

// RunList lists the card's controls with type, value count and current
// values.
func RunList(args []string, stdout, stderr io.Writer) int {
	opts, _, err := parseCommon("list", args, stderr)
	if err != nil {
		return exitCommandError
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	dev, card, err := openDevice(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDeviceError
	}
	defer dev.Close()

	fmt.Fprintf(stdout, "Card %d (%s): %d controls\n", card, dev.CardName(), dev.NumControls())
	for i := uint(0); i < dev.NumControls(); i++ {
		ctl := dev.Control(i)
		fmt.Fprintf(stdout, "%4d  %-6s %2d  %s%s\n",
			i, ctl.Type(), ctl.NumValues(), ctl.Name(), formatValues(ctl))
	}
	return exitSuccess
}

// RunGet prints a control's current value(s).
func RunGet(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseCommon("get", args, stderr)
	if err != nil {
		return exitCommandError
	}
	if len(rest) != 1 {
		fmt.Fprintln(stderr, "Usage: alsaroute get [options] <control>")
		return exitCommandError
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	dev, _, err := openDevice(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDeviceError
	}
	defer dev.Close()

	ctl, ok := dev.ControlByName(rest[0])
	if !ok {
		fmt.Fprintf(stderr, "Error: %v: %q\n", mixer.ErrUnknownControl, rest[0])
		return exitCommandError
	}

	fmt.Fprintf(stdout, "%s (%s)%s\n", ctl.Name(), ctl.Type(), formatValues(ctl))
	if items := ctl.EnumStrings(); len(items) > 0 {
		fmt.Fprintf(stdout, "  items: %s\n", strings.Join(items, ", "))
	}
	return exitSuccess
}

// RunSet sets a control to a numeric value, one-shot, outside any
// routing state.
func RunSet(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseCommon("set", args, stderr)
	if err != nil {
		return exitCommandError
	}
	if len(rest) != 2 {
		fmt.Fprintln(stderr, "Usage: alsaroute set [options] <control> <value>")
		return exitCommandError
	}
	value, err := strconv.Atoi(rest[1])
	if err != nil {
		fmt.Fprintf(stderr, "Error: value %q is not a number\n", rest[1])
		return exitCommandError
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	dev, _, err := openDevice(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDeviceError
	}
	defer dev.Close()

	failed, err := mixer.SetControlValue(dev, rest[0], value)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v (%d values failed)\n", err, failed)
		return exitCommandError
	}
	fmt.Fprintf(stdout, "%s -> %d\n", rest[0], value)
	return exitSuccess
}

// RunSenum sets an enumerated control by item name, one-shot.
func RunSenum(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseCommon("senum", args, stderr)
	if err != nil {
		return exitCommandError
	}
	if len(rest) != 2 {
		fmt.Fprintln(stderr, "Usage: alsaroute senum [options] <control> <item>")
		return exitCommandError
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	dev, _, err := openDevice(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDeviceError
	}
	defer dev.Close()

	if err := mixer.SetControlEnum(dev, rest[0], rest[1]); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	fmt.Fprintf(stdout, "%s -> %q\n", rest[0], rest[1])
	return exitSuccess
}

func formatValues(ctl mixer.Control) string {
	var sb strings.Builder
	for i := uint(0); i < ctl.NumValues(); i++ {
		v, err := ctl.Value(i)
		if err != nil {
			sb.WriteString(" ?")
			continue
		}
		fmt.Fprintf(&sb, " %d", v)
	}
	return sb.String()
}

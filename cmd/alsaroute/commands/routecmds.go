package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/alsaroute/alsaroute-go/pkg/route"
)

// RunPaths lists the path names defined for the card.
func RunPaths(args []string, stdout, stderr io.Writer) int {
	opts, _, err := parseCommon("paths", args, stderr)
	if err != nil {
		return exitCommandError
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	rt, closer, err := openRouter(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDeviceError
	}
	defer closer()

	for _, name := range rt.Paths() {
		fmt.Fprintln(stdout, name)
	}
	return exitSuccess
}

// RunApply stages one or more named paths and commits the combined
// transition in a single pass.
func RunApply(args []string, stdout, stderr io.Writer) int {
	opts, rest, err := parseCommon("apply", args, stderr)
	if err != nil {
		return exitCommandError
	}
	if len(rest) == 0 {
		fmt.Fprintln(stderr, "Usage: alsaroute apply [options] <path> [path...]")
		return exitCommandError
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	rt, closer, err := openRouter(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDeviceError
	}
	defer closer()

	for _, name := range rest {
		if err := rt.ApplyPath(name); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
	}
	if err := rt.Update(); err != nil {
		var ce *route.CommitError
		if errors.As(err, &ce) {
			fmt.Fprintf(stderr, "Warning: %v\n", ce)
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitDeviceError
		}
	}
	fmt.Fprintf(stdout, "Applied: %v\n", rest)
	return exitSuccess
}

// RunReset restores the card to the state captured right after its
// definitions were first loaded.
func RunReset(args []string, stdout, stderr io.Writer) int {
	opts, _, err := parseCommon("reset", args, stderr)
	if err != nil {
		return exitCommandError
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	rt, closer, err := openRouter(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitDeviceError
	}
	defer closer()

	rt.Reset()
	if err := rt.Update(); err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	fmt.Fprintln(stdout, "Reset to boot state")
	return exitSuccess
}

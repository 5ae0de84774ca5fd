// alsaroute is a command-line tool for inspecting and driving a card's
// mixer: listing controls, one-shot control changes, and applying named
// mixer paths through the routing engine.
package main

import (
	"fmt"
	"os"

	"github.com/alsaroute/alsaroute-go/cmd/alsaroute/commands"
	"github.com/alsaroute/alsaroute-go/cmd/alsaroute/interactive"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitDeviceError  = 2
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "list":
		exitCode = commands.RunList(args, os.Stdout, os.Stderr)
	case "get":
		exitCode = commands.RunGet(args, os.Stdout, os.Stderr)
	case "set":
		exitCode = commands.RunSet(args, os.Stdout, os.Stderr)
	case "senum":
		exitCode = commands.RunSenum(args, os.Stdout, os.Stderr)
	case "paths":
		exitCode = commands.RunPaths(args, os.Stdout, os.Stderr)
	case "apply":
		exitCode = commands.RunApply(args, os.Stdout, os.Stderr)
	case "reset":
		exitCode = commands.RunReset(args, os.Stdout, os.Stderr)
	case "shell":
		exitCode = interactive.Run(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("alsaroute version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`alsaroute - mixer path and control tool

Usage:
  alsaroute <command> [options] [args...]

Commands:
  list       List the card's mixer controls
  get        Print a control's value(s)
  set        Set a control to a numeric value (one-shot)
  senum      Set an enum control by item name (one-shot)
  paths      List the path names in the card's definitions file
  apply      Apply one or more named paths and commit
  reset      Restore the card to its boot state
  shell      Interactive mixer shell

Options (all commands):
  -card N         Card number (default: first card found)
  -config FILE    Configuration file (YAML)

Examples:
  alsaroute list -card 0
  alsaroute set "Master Playback Volume" 64
  alsaroute senum "Capture Source" Mic
  alsaroute apply speaker
  alsaroute shell`)
}

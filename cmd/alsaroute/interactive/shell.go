// Package interactive provides the interactive mixer shell for
// alsaroute. Unlike the one-shot subcommands it keeps one routing
// engine open, so several paths can be staged and committed as a single
// transition.
package interactive

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/alsaroute/alsaroute-go/cmd/alsaroute/commands"
	"github.com/alsaroute/alsaroute-go/pkg/mixer"
	"github.com/alsaroute/alsaroute-go/pkg/route"
)

// Run starts the interactive shell and blocks until the user exits.
func Run(args []string, stdout, stderr io.Writer) int {
	rt, dev, closer, err := commands.OpenShell(args, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	defer closer()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "mixer> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to create readline: %v\n", err)
		return 1
	}
	defer rl.Close()

	sh := &shell{rt: rt, dev: dev, rl: rl}
	sh.printHelp()
	sh.loop()
	return 0
}

type shell struct {
	rt  *route.Router
	dev mixer.Device
	rl  *readline.Instance
}

func (s *shell) out() io.Writer { return s.rl.Stdout() }

func (s *shell) loop() {
	for {
		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			s.printHelp()

		case "paths", "p":
			for _, name := range s.rt.Paths() {
				fmt.Fprintln(s.out(), name)
			}

		case "apply", "a":
			s.cmdApply(args)

		case "reset":
			s.rt.Reset()
			fmt.Fprintln(s.out(), "staged reset (commit to write)")

		case "commit", "c":
			s.cmdCommit()

		case "list", "l":
			s.cmdList()

		case "get", "g":
			s.cmdGet(args)

		case "set":
			s.cmdSet(args)

		case "senum":
			s.cmdSenum(args)

		case "exit", "quit", "q":
			return

		default:
			fmt.Fprintf(s.out(), "Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

func (s *shell) cmdApply(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out(), "Usage: apply <path> [path...]")
		return
	}
	for _, name := range args {
		if err := s.rt.ApplyPath(name); err != nil {
			fmt.Fprintf(s.out(), "apply %q: %v\n", name, err)
			return
		}
	}
	fmt.Fprintf(s.out(), "staged %v (commit to write)\n", args)
}

func (s *shell) cmdCommit() {
	if err := s.rt.Update(); err != nil {
		fmt.Fprintf(s.out(), "commit: %v\n", err)
		return
	}
	fmt.Fprintln(s.out(), "committed")
}

func (s *shell) cmdList() {
	for i := uint(0); i < s.dev.NumControls(); i++ {
		ctl := s.dev.Control(i)
		fmt.Fprintf(s.out(), "%4d  %-6s %2d  %s\n", i, ctl.Type(), ctl.NumValues(), ctl.Name())
	}
}

func (s *shell) cmdGet(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out(), "Usage: get <control name>")
		return
	}
	name := strings.Join(args, " ")
	ctl, ok := s.dev.ControlByName(name)
	if !ok {
		fmt.Fprintf(s.out(), "no control %q\n", name)
		return
	}
	fmt.Fprintf(s.out(), "%s (%s):", ctl.Name(), ctl.Type())
	for i := uint(0); i < ctl.NumValues(); i++ {
		v, err := ctl.Value(i)
		if err != nil {
			fmt.Fprint(s.out(), " ?")
			continue
		}
		fmt.Fprintf(s.out(), " %d", v)
	}
	fmt.Fprintln(s.out())
	if items := ctl.EnumStrings(); len(items) > 0 {
		fmt.Fprintf(s.out(), "  items: %s\n", strings.Join(items, ", "))
	}
}

func (s *shell) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out(), "Usage: set <control name> <value>")
		return
	}
	name := strings.Join(args[:len(args)-1], " ")
	value, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		fmt.Fprintf(s.out(), "%q is not a number\n", args[len(args)-1])
		return
	}
	if failed, err := mixer.SetControlValue(s.dev, name, value); err != nil {
		fmt.Fprintf(s.out(), "set %q: %v (%d values failed)\n", name, err, failed)
		return
	}
	fmt.Fprintf(s.out(), "%s -> %d\n", name, value)
}

func (s *shell) cmdSenum(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out(), "Usage: senum <control name> <item>")
		return
	}
	name := strings.Join(args[:len(args)-1], " ")
	item := args[len(args)-1]
	if err := mixer.SetControlEnum(s.dev, name, item); err != nil {
		fmt.Fprintf(s.out(), "senum %q: %v\n", name, err)
		return
	}
	fmt.Fprintf(s.out(), "%s -> %q\n", name, item)
}

func (s *shell) printHelp() {
	fmt.Fprint(s.out(), `Commands:
  paths, p              list path names
  apply, a <path...>    stage path settings
  reset                 stage the saved boot state
  commit, c             write staged changes to the hardware
  list, l               list controls
  get, g <control>      print a control's values
  set <control> <n>     one-shot numeric set (bypasses staging)
  senum <control> <s>   one-shot enum set (bypasses staging)
  help, ?               this help
  exit, quit, q         leave the shell
`)
}

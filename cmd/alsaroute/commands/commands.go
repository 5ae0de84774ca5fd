// Package commands implements the alsaroute subcommands.
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/alsaroute/alsaroute-go/pkg/config"
	"github.com/alsaroute/alsaroute-go/pkg/log"
	"github.com/alsaroute/alsaroute-go/pkg/mixer"
	"github.com/alsaroute/alsaroute-go/pkg/mixer/alsactl"
	"github.com/alsaroute/alsaroute-go/pkg/pathdef"
	"github.com/alsaroute/alsaroute-go/pkg/route"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
	exitDeviceError  = 2
)

// commonOptions are the flags shared by every subcommand.
type commonOptions struct {
	Card       int
	ConfigFile string
}

// parseCommon parses the shared flags and returns the remaining
// positional arguments.
func parseCommon(name string, args []string, stderr io.Writer) (*commonOptions, []string, error) {
	opts := &commonOptions{Card: -1}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.Card, "card", -1, "card number (default: first card found)")
	fs.StringVar(&opts.ConfigFile, "config", "", "configuration file (YAML)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs.Args(), nil
}

// loadConfig resolves the effective configuration: the file when given,
// defaults otherwise, with the -card flag taking precedence.
func loadConfig(opts *commonOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}
	if opts.Card >= 0 {
		cfg.Card = opts.Card
	}
	return &cfg, nil
}

// resolveCard picks the configured card, discovering the first one when
// the configuration says so.
func resolveCard(cfg *config.Config) (int, error) {
	if cfg.Card >= 0 {
		return cfg.Card, nil
	}
	return mixer.FirstCard(cfg.DeviceDir)
}

// openDevice opens the control device for the effective card.
func openDevice(cfg *config.Config) (*alsactl.Device, int, error) {
	card, err := resolveCard(cfg)
	if err != nil {
		return nil, -1, err
	}
	dev, err := alsactl.Open(card)
	if err != nil {
		return nil, -1, err
	}
	return dev, card, nil
}

// openRouter opens the device, locates the card's definitions file and
// builds a routing engine from it. The returned closer releases the
// device and the event log.
func openRouter(cfg *config.Config) (*route.Router, func(), error) {
	dev, card, err := openDevice(cfg)
	if err != nil {
		return nil, nil, err
	}

	vendor := mixer.VendorName(cfg.ChipNamePattern, card)
	defsFile := mixer.DefinitionsFile(cfg.DefinitionsDir, vendor)
	f, err := os.Open(defsFile)
	if err != nil {
		_ = dev.Close()
		return nil, nil, fmt.Errorf("opening definitions: %w", err)
	}
	defer f.Close()

	var logger log.Logger = log.NoopLogger{}
	var fileLog *log.FileLogger
	if cfg.LogFile != "" {
		fileLog, err = log.NewFileLogger(cfg.LogFile)
		if err != nil {
			_ = dev.Close()
			return nil, nil, fmt.Errorf("opening event log: %w", err)
		}
		logger = fileLog
	}

	rt, err := route.Open(dev, pathdef.NewXMLSource(f),
		route.WithCard(card),
		route.WithSourceName(defsFile),
		route.WithLogger(logger),
	)
	if err != nil {
		_ = dev.Close()
		if fileLog != nil {
			_ = fileLog.Close()
		}
		return nil, nil, err
	}

	closer := func() {
		_ = rt.Close()
		if fileLog != nil {
			_ = fileLog.Close()
		}
	}
	return rt, closer, nil
}

// OpenShell wires up the interactive shell: it parses the shared flags,
// builds a routing engine, and opens a second control device for
// one-shot operations so ad hoc set commands never disturb the engine's
// cached state.
func OpenShell(args []string, stderr io.Writer) (*route.Router, mixer.Device, func(), error) {
	opts, _, err := parseCommon("shell", args, stderr)
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	rt, closer, err := openRouter(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	card, err := resolveCard(cfg)
	if err != nil {
		closer()
		return nil, nil, nil, err
	}
	dev, err := alsactl.Open(card)
	if err != nil {
		closer()
		return nil, nil, nil, err
	}

	return rt, dev, func() {
		_ = dev.Close()
		closer()
	}, nil
}

// Command flyingcarpet sends or receives a set of files over an ad-hoc
// WiFi hotspot shared by a passphrase, with no prior pairing and no
// account system.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/samir0909/flyingcarpet/application"
	"github.com/samir0909/flyingcarpet/infrastructure/config"
	"github.com/samir0909/flyingcarpet/infrastructure/ui/cli"
	"github.com/samir0909/flyingcarpet/infrastructure/ui/tui"
	"github.com/samir0909/flyingcarpet/presentation"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "flyingcarpet:", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	req, err := config.ParseArgs(argv)
	if err != nil {
		return fmt.Errorf("parsing arguments: %w", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	settings, err := config.Load(filepath.Join(configDir, "flyingcarpet", "config.json"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ui, wait := buildUI(req.ResolveUIMode(settings))
	deps := presentation.NewDependencies(ui, os.Getenv("FLYINGCARPET_PEER_ADDR"))

	runErr := presentation.Run(ctx, deps, req, settings)
	if waitErr := wait(); waitErr != nil && runErr == nil {
		runErr = waitErr
	}
	return runErr
}

// buildUI resolves auto to the bubbletea TUI on an interactive stdout and
// the plain CLI otherwise, then constructs the chosen application.UI. wait
// blocks until the UI has finished rendering (a no-op for the CLI, which
// never runs its own event loop).
func buildUI(mode config.UIMode) (ui application.UI, wait func() error) {
	if mode == config.UIAuto {
		if isatty.IsTerminal(os.Stdout.Fd()) {
			mode = config.UITUI
		} else {
			mode = config.UICLI
		}
	}

	if mode == config.UITUI {
		t := tui.New()
		done := make(chan error, 1)
		go func() { done <- t.Start() }()
		return t, func() error { return <-done }
	}

	return cli.New(os.Stdout), func() error { return nil }
}

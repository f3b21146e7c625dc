package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/1broseidon/tabswitch/internal/inspect"
	"github.com/1broseidon/tabswitch/internal/logging"
	"github.com/1broseidon/tabswitch/internal/platform"
	"github.com/1broseidon/tabswitch/internal/switcher"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

type options struct {
	test  bool
	log   bool
	list  bool
	icons bool
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tabswitch [--test] [--log] [--list [--icons]]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Without options, grab Alt+Tab and run as a daemon. Hold Alt and")
	fmt.Fprintln(w, "press Tab (Shift+Tab backwards) to cycle; release Alt to switch.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --test     Open the switcher once; Tab cycles, Enter switches, Escape cancels")
	fmt.Fprintln(w, "  --log      Write a diagnostic log to $XDG_STATE_HOME/tabswitch/tabswitch.log")
	fmt.Fprintln(w, "  --list     Print the windows the switcher would offer as YAML and exit")
	fmt.Fprintln(w, "  --icons    With --list, draw each icon as text art (terminal only)")
}

func parseArgs(args []string, stderr io.Writer) (options, int, bool) {
	var opts options

	fs := flag.NewFlagSet("tabswitch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	fs.BoolVar(&opts.test, "test", false, "open the switcher once in keyboard mode")
	fs.BoolVar(&opts.log, "log", false, "write a diagnostic log")
	fs.BoolVar(&opts.list, "list", false, "print candidate windows as YAML and exit")
	fs.BoolVar(&opts.icons, "icons", false, "with --list, render icons as text art")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, 0, false
		}
		return opts, 2, false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "unexpected argument: %s\n\n", fs.Arg(0))
		printUsage(stderr)
		return opts, 2, false
	}
	if opts.icons && !opts.list {
		fmt.Fprintln(stderr, "--icons requires --list")
		return opts, 2, false
	}
	if opts.test && opts.list {
		fmt.Fprintln(stderr, "--test and --list cannot be combined")
		return opts, 2, false
	}
	return opts, 0, true
}

func run(args []string) int {
	opts, code, ok := parseArgs(args, os.Stderr)
	if !ok {
		return code
	}

	logger, err := logging.New(opts.log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: diagnostic log disabled: %v\n", err)
	}
	defer logger.Close()

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to display: %v\n", err)
		return 1
	}
	defer backend.Disconnect()

	switch {
	case opts.list:
		return runList(backend, logger, opts.icons)
	case opts.test:
		return runTest(backend, logger)
	default:
		return runDaemon(backend, logger)
	}
}

func runList(backend platform.Backend, logger *logging.Logger, icons bool) int {
	candidates := switcher.Collect(backend, logger.Slog())

	if err := inspect.WriteYAML(os.Stdout, candidates); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if icons {
		width := inspect.TerminalWidth(os.Stdout)
		if width == 0 {
			fmt.Fprintln(os.Stderr, "--icons: stdout is not a terminal, skipping icon preview")
			return 0
		}
		if err := inspect.WriteIcons(os.Stdout, candidates, width); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}
	return 0
}

func runTest(backend platform.Backend, logger *logging.Logger) int {
	if err := logger.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	logger.Slog().Info("keyboard session started")

	res, err := switcher.Run(backend, logger.Slog(), switcher.ModeKeyboard, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Switcher failed: %v\n", err)
		return 1
	}
	logger.Slog().Info("keyboard session finished", "phase", res.Phase.String())
	return 0
}

func runDaemon(backend *platform.LinuxBackend, logger *logging.Logger) int {
	var stopping atomic.Bool

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		sig, ok := <-sigCh
		if !ok {
			return
		}
		logger.Slog().Info("shutting down", "signal", sig.String())
		stopping.Store(true)
		backend.Disconnect()
	}()

	err := switcher.Serve(backend, logger)
	if stopping.Load() {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "tabswitch daemon stopped: %v\n", err)
		return 1
	}
	return 0
}

// cmd/friendgraph/main.go runs a command script against a fresh network and
// prints each result. Without a script it runs the built-in demo.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/friendgraph/internal/config"
	"github.com/jason-s-yu/friendgraph/internal/handlers"
	"github.com/jason-s-yu/friendgraph/internal/middleware"
	"github.com/jason-s-yu/friendgraph/internal/network"
	"github.com/jason-s-yu/friendgraph/internal/script"
)

// errUsage marks flag errors; the flag package has already printed them.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process exits, so it can be tested. Errors are
// returned, not logged; the caller reports them.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("friendgraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	scriptPath := fs.String("script", "", `command script to run ("-" reads stdin); defaults to FRIENDGRAPH_SCRIPT`)
	envFile := fs.String("env", "", "extra .env file to load before reading the environment")
	demo := fs.Bool("demo", false, "run the built-in demo even if a script is configured")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	var (
		cfg config.Config
		err error
	)
	if *envFile != "" {
		cfg, err = config.LoadFile(*envFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if *scriptPath == "" {
		*scriptPath = cfg.Script
	}

	logger := cfg.NewLogger(stderr)

	cmds, err := loadCommands(*scriptPath, *demo, stdin)
	if err != nil {
		return fmt.Errorf("failed to load script: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"script":   *scriptPath,
		"commands": len(cmds),
	}).Debug("script loaded")

	net := network.New(logger)
	h := middleware.LogCommands(logger)(handlers.NewConsole(net, stdout))
	return handlers.Run(ctx, h, cmds)
}

func loadCommands(path string, demo bool, stdin io.Reader) ([]script.Command, error) {
	switch {
	case demo || path == "":
		return script.Demo(), nil
	case path == "-":
		return script.Parse(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()
	return script.Parse(f)
}

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jshobe/secrethub-go/pkg/secrethub"
	"github.com/jshobe/secrethub-go/pkg/secrethub/logging"
	"github.com/jshobe/secrethub-go/pkg/secrethub/memlib"
)

// app carries the streams and global flags shared by every command.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	memory  bool
	verbose bool

	// mem backs --memory. It lives as long as the app so that commands run
	// in one process see each other's writes.
	mem *memlib.Library
}

func newApp() *app {
	return &app{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "secrethub-go",
		Short: "Read, write and resolve SecretHub secrets.",
		Long: `secrethub-go talks to SecretHub through the native libsecrethub client.
Credentials are picked up by the library from its usual locations.

Use --memory to run against an in-process stand-in that needs neither the
library nor an account.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().BoolVar(&a.memory, "memory", false, "Use the in-memory stand-in instead of libsecrethub")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log client activity to stderr")

	root.AddCommand(
		newReadCmd(a),
		newWriteCmd(a),
		newExistsCmd(a),
		newRemoveCmd(a),
		newResolveCmd(a),
		newEnvCmd(a),
		newRunCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) config() secrethub.Config {
	cfg := secrethub.Config{}
	if a.verbose {
		handler := slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: slog.LevelDebug})
		cfg.Logger = logging.New(slog.New(handler))
	}
	if a.memory {
		if a.mem == nil {
			a.mem = memlib.New()
		}
		cfg.Library = a.mem
	}
	return cfg
}

// withClient opens a client, runs fn and closes the client again.
func (a *app) withClient(fn func(c *secrethub.Client) error) error {
	c, err := secrethub.Open(a.config())
	if err != nil {
		if errors.Is(err, secrethub.ErrNotBuilt) {
			return fmt.Errorf("%w: rebuild with -tags libsecrethub or pass --memory", err)
		}
		return err
	}
	defer c.Close()
	return fn(c)
}

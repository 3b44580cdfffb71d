package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jshobe/secrethub-go/pkg/secrethub"
)

func newReadCmd(a *app) *cobra.Command {
	var (
		meta   bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "read <path>",
		Short: "Print the value of a secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			format, err := parseFormat(output, formatText, formatJSON, formatYAML)
			if err != nil {
				return err
			}
			path := args[0]
			return a.withClient(func(c *secrethub.Client) error {
				if !meta && format == formatText {
					value, err := c.ReadString(path)
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(a.out, value)
					return err
				}

				v, err := c.Read(path)
				if err != nil {
					return err
				}
				view := newVersionView(path, v, meta)
				if format == formatText {
					return renderVersionTable(a.out, view)
				}
				return encode(a.out, format, view)
			})
		},
	}
	cmd.Flags().BoolVar(&meta, "meta", false, "Include version and secret metadata")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format: text, json or yaml")
	return cmd
}

func newWriteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "write <path> [value]",
		Short: "Store a new version of a secret",
		Long: `Store a new version of the secret at path. When value is omitted it is
read from stdin and a single trailing newline is dropped.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]
			var value string
			if len(args) == 2 {
				value = args[1]
			} else {
				b, err := io.ReadAll(a.in)
				if err != nil {
					return fmt.Errorf("read value from stdin: %w", err)
				}
				value = strings.TrimSuffix(strings.TrimSuffix(string(b), "\n"), "\r")
			}
			if value == "" {
				return errors.New("refusing to write an empty secret")
			}
			return a.withClient(func(c *secrethub.Client) error {
				if err := c.Write(path, value); err != nil {
					return err
				}
				fmt.Fprintf(a.errOut, "wrote %s\n", path)
				return nil
			})
		},
	}
}

func newExistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "Report whether a secret exists",
		Long:  "Print true or false. The exit status is 0 either way unless the lookup itself fails.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.withClient(func(c *secrethub.Client) error {
				ok, err := c.Exists(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, ok)
				return err
			})
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <path>",
		Aliases: []string{"remove"},
		Short:   "Delete a secret and all of its versions",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.withClient(func(c *secrethub.Client) error {
				if err := c.Remove(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(a.errOut, "removed %s\n", args[0])
				return nil
			})
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <ref>",
		Short: "Resolve a secrethub:// reference; other input is printed as is",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return a.withClient(func(c *secrethub.Client) error {
				out, err := c.Resolve(args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(a.out, out)
				return err
			})
		},
	}
}

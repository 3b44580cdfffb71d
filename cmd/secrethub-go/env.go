package main

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jshobe/secrethub-go/pkg/secrethub"
)

// exitError carries a child's exit status out of the run command.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func exitCode(err error) (int, bool) {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code, true
	}
	return 0, false
}

// loadEnvFiles adds the variables in files to the process environment
// without overriding ones already set, so references in them get resolved.
func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		return nil
	}
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func newEnvCmd(a *app) *cobra.Command {
	var (
		envFiles []string
		output   string
	)
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the environment with secret references resolved",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			format, err := parseFormat(output, formatTable, formatJSON)
			if err != nil {
				return err
			}
			if err := loadEnvFiles(envFiles); err != nil {
				return err
			}
			return a.withClient(func(c *secrethub.Client) error {
				env, err := c.ResolveEnv()
				if err != nil {
					return err
				}
				if format == formatJSON {
					return encode(a.out, format, env)
				}
				renderEnvTable(a.out, env)
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "Load variables from a .env file first (repeatable)")
	cmd.Flags().StringVarP(&output, "output", "o", formatTable, "Output format: table or json")
	return cmd
}

func newRunCmd(a *app) *cobra.Command {
	var envFiles []string
	cmd := &cobra.Command{
		Use:   "run [flags] -- <command> [args...]",
		Short: "Run a command with secret references in its environment resolved",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFiles(envFiles); err != nil {
				return err
			}

			var env map[string]string
			err := a.withClient(func(c *secrethub.Client) error {
				var err error
				env, err = c.ResolveEnv()
				return err
			})
			if err != nil {
				return err
			}

			child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
			child.Env = secrethub.Environ(env)
			child.Stdin = a.in
			child.Stdout = a.out
			child.Stderr = a.errOut

			if err := child.Run(); err != nil {
				var ee *exec.ExitError
				if errors.As(err, &ee) {
					return &exitError{code: ee.ExitCode()}
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "Load variables from a .env file first (repeatable)")
	return cmd
}

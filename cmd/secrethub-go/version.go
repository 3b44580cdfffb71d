package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jshobe/secrethub-go/pkg/secrethub"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client and library versions",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "secrethub-go %s\n", secrethub.WrapperVersion())
			fmt.Fprintf(a.out, "%s %s\n", secrethub.UpstreamLibrary, secrethub.LibraryVersion())
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	betafn "github.com/ieee0824/betafn-go"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of betafn",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "betafn version %s\n", betafn.Version)
		},
	}
}

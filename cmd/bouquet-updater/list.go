package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Download the bundle and list its bouquets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(false)
		if err != nil {
			return err
		}
		if err := r.load(cmd.Context(), nil, false); err != nil {
			return err
		}
		r.terminal.PrintCatalog()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/ytget/bouquet-updater/internal/session"
)

var (
	copySelect []string
	copyAll    bool
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy selected bouquets to the staging directory",
	Long: `Copy selected bouquets to the staging directory and add missing entries
to the live bouquet index. Live bouquet files are not touched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(false)
		if err != nil {
			return err
		}
		if err := r.load(cmd.Context(), copySelect, copyAll); err != nil {
			return err
		}
		return r.dispatch(cmd.Context(), session.CmdCopy)
	},
}

func init() {
	copyCmd.Flags().StringArrayVarP(&copySelect, "select", "s", nil, "bouquet display name (repeatable)")
	copyCmd.Flags().BoolVar(&copyAll, "all", false, "select every bouquet")
	copyCmd.MarkFlagsMutuallyExclusive("select", "all")

	rootCmd.AddCommand(copyCmd)
}

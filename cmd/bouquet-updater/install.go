package main

import (
	"github.com/spf13/cobra"

	"github.com/ytget/bouquet-updater/internal/session"
)

var (
	installSelect []string
	installAll    bool
	installYes    bool
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install selected bouquets into the live configuration",
	Long: `Install selected bouquets, lamedb and satellites.xml into the live
configuration and ask the receiver to reload them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(installYes)
		if err != nil {
			return err
		}
		if err := r.load(cmd.Context(), installSelect, installAll); err != nil {
			return err
		}
		return r.dispatch(cmd.Context(), session.CmdInstall)
	},
}

func init() {
	installCmd.Flags().StringArrayVarP(&installSelect, "select", "s", nil, "bouquet display name (repeatable)")
	installCmd.Flags().BoolVar(&installAll, "all", false, "select every bouquet")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "install without asking")
	installCmd.MarkFlagsMutuallyExclusive("select", "all")

	rootCmd.AddCommand(installCmd)
}

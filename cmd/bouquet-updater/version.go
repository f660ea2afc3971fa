package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/bouquet-updater/internal/catalog"
	"github.com/ytget/bouquet-updater/internal/session"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the program version and the latest bundle version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("bouquet-updater %s\n", version)

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		release, err := catalog.NewClient(nil, cfg.Remote).Fetch(cmd.Context())
		fmt.Println(session.VersionLabel(release, err))
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

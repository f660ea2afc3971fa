package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/bouquet-updater/internal/config"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	configPath string
	sandboxDir string
	noReload   bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bouquet-updater",
	Short: "Download and install Enigma2 bouquets",
	Long: `Download the current bouquet bundle, pick bouquets by name and copy or
install them into the receiver's configuration.

Examples:
  bouquet-updater list
  bouquet-updater copy --select "Sport" --select "News"
  bouquet-updater install -s "Sport" --yes
  bouquet-updater install --all --sandbox /tmp/box --no-reload`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			log.SetOutput(io.Discard)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigFile, "TOML config file")
	rootCmd.PersistentFlags().StringVar(&sandboxDir, "sandbox", "", "relocate every scratch and live directory under this directory")
	rootCmd.PersistentFlags().BoolVar(&noReload, "no-reload", false, "do not ask the receiver to reload after install")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print log output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

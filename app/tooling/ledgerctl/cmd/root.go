// Package cmd contains the ledgerctl commands.
package cmd

import (
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var url string

var client = resty.New()

var rootCmd = &cobra.Command{
	Use:   "ledgerctl",
	Short: "Command line client for a ledger node",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:8080", "Url of the node.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// mineCmd asks the node to drain the pending pool into a new block.
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Signal the node to mine the pending transfers",
	Run:   mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func mineRun(cmd *cobra.Command, args []string) {
	var result struct {
		Status string `json:"status"`
	}

	resp, err := client.R().SetResult(&result).Get(url + "/v1/mining/signal")
	if err != nil {
		log.Fatal(err)
	}
	if resp.IsError() {
		log.Fatalf("node returned %s: %s", resp.Status(), resp.Body())
	}

	fmt.Println(result.Status)
}

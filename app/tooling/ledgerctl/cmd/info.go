package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

type info struct {
	Height       int     `json:"height"`
	LatestBlock  string  `json:"latest_block"`
	Difficulty   uint    `json:"difficulty"`
	MiningReward float64 `json:"mining_reward"`
	Uncommitted  int     `json:"uncommitted"`
}

// infoCmd prints the current shape of the chain.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the current state of the node",
	Run:   infoRun,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func infoRun(cmd *cobra.Command, args []string) {
	var nfo info
	resp, err := client.R().SetResult(&nfo).Get(url + "/v1/ledger/info")
	if err != nil {
		log.Fatal(err)
	}
	if resp.IsError() {
		log.Fatalf("node returned %s: %s", resp.Status(), resp.Body())
	}

	fmt.Printf("Height:        %d\n", nfo.Height)
	fmt.Printf("Latest block:  %s\n", nfo.LatestBlock)
	fmt.Printf("Difficulty:    %d\n", nfo.Difficulty)
	fmt.Printf("Mining reward: %v\n", nfo.MiningReward)
	fmt.Printf("Uncommitted:   %d\n", nfo.Uncommitted)
}

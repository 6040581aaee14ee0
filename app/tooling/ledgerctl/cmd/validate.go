package cmd

import (
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type validity struct {
	Valid       bool   `json:"valid"`
	FailedBlock uint64 `json:"failed_block"`
	Reason      string `json:"reason"`
}

// validateCmd asks the node to check the integrity of the whole chain.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the integrity of the chain",
	Run:   validateRun,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func validateRun(cmd *cobra.Command, args []string) {
	var vld validity
	resp, err := client.R().SetResult(&vld).Get(url + "/v1/chain/validate")
	if err != nil {
		log.Fatal(err)
	}
	if resp.IsError() {
		log.Fatalf("node returned %s: %s", resp.Status(), resp.Body())
	}

	if vld.Valid {
		color.Green("chain is valid")
		return
	}

	color.Red("chain is INVALID at block %d: %s", vld.FailedBlock, vld.Reason)
}

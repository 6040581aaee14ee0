package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var (
	from   string
	to     string
	amount float64
)

// sendCmd submits a transfer to the node's pending pool.
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a transfer",
	Run:   sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&from, "from", "f", "", "Account sending the funds.")
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Account receiving the funds.")
	sendCmd.Flags().Float64VarP(&amount, "amount", "v", 0, "Amount to send.")
	sendCmd.MarkFlagRequired("from")
	sendCmd.MarkFlagRequired("to")
}

func sendRun(cmd *cobra.Command, args []string) {
	tx := struct {
		From   string  `json:"from"`
		To     string  `json:"to"`
		Amount float64 `json:"amount"`
	}{
		From:   from,
		To:     to,
		Amount: amount,
	}

	var result struct {
		Status string `json:"status"`
	}

	resp, err := client.R().SetBody(tx).SetResult(&result).Post(url + "/v1/tx/submit")
	if err != nil {
		log.Fatal(err)
	}
	if resp.IsError() {
		log.Fatalf("node returned %s: %s", resp.Status(), resp.Body())
	}

	fmt.Println(result.Status)
}

package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type balance struct {
	Account string  `json:"account"`
	Balance float64 `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}

// balancesCmd prints the net balance per account. With an argument it
// prints just that account.
var balancesCmd = &cobra.Command{
	Use:   "balances [account]",
	Short: "Print account balances",
	Args:  cobra.MaximumNArgs(1),
	Run:   balancesRun,
}

func init() {
	rootCmd.AddCommand(balancesCmd)
}

func balancesRun(cmd *cobra.Command, args []string) {
	path := url + "/v1/balances/list"
	if len(args) == 1 {
		path += "/" + args[0]
	}

	var bals balances
	resp, err := client.R().SetResult(&bals).Get(path)
	if err != nil {
		log.Fatal(err)
	}
	if resp.IsError() {
		log.Fatalf("node returned %s: %s", resp.Status(), resp.Body())
	}

	fmt.Printf("Latest block: %s\n", bals.LatestBlock)
	fmt.Printf("Uncommitted transfers: %d\n\n", bals.Uncommitted)

	data := make([][]string, len(bals.Balances))
	for i, bal := range bals.Balances {
		data[i] = []string{bal.Account, strconv.FormatFloat(bal.Balance, 'f', -1, 64)}
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"Account", "Balance"})
	table.Bulk(data)
	table.Render()
}

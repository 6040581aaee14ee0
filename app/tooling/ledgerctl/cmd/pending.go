package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// pendingCmd prints the uncommitted transfers waiting to be mined.
var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "Print the uncommitted transfers",
	Run:   pendingRun,
}

func init() {
	rootCmd.AddCommand(pendingCmd)
}

func pendingRun(cmd *cobra.Command, args []string) {
	var trans []tx
	resp, err := client.R().SetResult(&trans).Get(url + "/v1/tx/uncommitted/list")
	if err != nil {
		log.Fatal(err)
	}
	if resp.IsError() {
		log.Fatalf("node returned %s: %s", resp.Status(), resp.Body())
	}

	if len(trans) == 0 {
		fmt.Println("pending pool is empty")
		return
	}

	data := make([][]string, len(trans))
	for i, tran := range trans {
		data[i] = []string{
			tran.From,
			tran.To,
			strconv.FormatFloat(tran.Amount, 'f', -1, 64),
			strconv.FormatInt(tran.TimeStamp, 10),
		}
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"From", "To", "Amount", "Timestamp"})
	table.Bulk(data)
	table.Render()
}

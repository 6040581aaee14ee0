package cmd

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type tx struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	TimeStamp int64   `json:"timestamp"`
}

type block struct {
	Number        uint64 `json:"number"`
	TimeStamp     int64  `json:"timestamp"`
	PrevBlockHash string `json:"prev_block_hash"`
	Hash          string `json:"hash"`
	Nonce         uint64 `json:"nonce"`
	Difficulty    uint   `json:"difficulty"`
	Transfers     []tx   `json:"transfers"`
}

// blocksCmd prints the chain. With an argument it prints only the
// blocks that involve that account.
var blocksCmd = &cobra.Command{
	Use:   "blocks [account]",
	Short: "Print the blocks in the chain",
	Args:  cobra.MaximumNArgs(1),
	Run:   blocksRun,
}

func init() {
	rootCmd.AddCommand(blocksCmd)
}

func blocksRun(cmd *cobra.Command, args []string) {
	path := url + "/v1/blocks/list"
	if len(args) == 1 {
		path += "/" + args[0]
	}

	var blocks []block
	resp, err := client.R().SetResult(&blocks).Get(path)
	if err != nil {
		log.Fatal(err)
	}
	if resp.IsError() {
		log.Fatalf("node returned %s: %s", resp.Status(), resp.Body())
	}
	if resp.StatusCode() == http.StatusNoContent {
		log.Println("no blocks match")
		return
	}

	var data [][]string
	for _, blk := range blocks {
		for _, tran := range blk.Transfers {
			data = append(data, []string{
				strconv.FormatUint(blk.Number, 10),
				blk.Hash,
				strconv.FormatUint(blk.Nonce, 10),
				tran.From,
				tran.To,
				strconv.FormatFloat(tran.Amount, 'f', -1, 64),
			})
		}
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"Block", "Hash", "Nonce", "From", "To", "Amount"})
	table.Bulk(data)
	table.Render()
}

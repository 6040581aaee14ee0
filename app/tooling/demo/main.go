// This program runs the full mining lifecycle in process: submit
// transfers, mine them, print the chain and balances, then tamper with
// a mined block to show validation catching it.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/saeed-moradi-98/rusty-blockchain/foundation/ledger"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	lgr, err := ledger.New(ledger.Config{
		Difficulty:   4,
		MiningReward: 100,
	})
	if err != nil {
		return fmt.Errorf("constructing ledger: %w", err)
	}

	color.Cyan("== submitting first batch of transfers ==")
	lgr.SubmitTransfer(ledger.NewTransfer("Alice", "Bob", 50))
	lgr.SubmitTransfer(ledger.NewTransfer("Bob", "Charlie", 25))

	if err := mine(lgr, "Miner1"); err != nil {
		return err
	}

	color.Cyan("== submitting second batch of transfers ==")
	lgr.SubmitTransfer(ledger.NewTransfer("Charlie", "Alice", 10))
	lgr.SubmitTransfer(ledger.NewTransfer("Alice", "Miner1", 5))

	if err := mine(lgr, "Miner1"); err != nil {
		return err
	}

	printChain(lgr)
	printBalances(lgr)

	color.Cyan("== validating the chain ==")
	report(lgr)

	color.Cyan("== tampering with a mined transfer ==")
	lgr.Blocks()[1].Transfers[0].Amount = 1000
	report(lgr)

	return nil
}

// mine drains the pending pool into a new block and reports how long
// the nonce search took.
func mine(lgr *ledger.Ledger, minerAccount string) error {
	t := time.Now()
	blk, err := lgr.MinePending(context.Background(), minerAccount)
	if err != nil {
		return fmt.Errorf("mining block: %w", err)
	}

	fmt.Printf("mined block %d in %v after %s attempts\n\n", blk.Number, time.Since(t), humanize.Comma(int64(blk.Nonce)+1))
	return nil
}

func printChain(lgr *ledger.Ledger) {
	color.Cyan("== chain ==")

	var data [][]string
	for _, blk := range lgr.Blocks() {
		for _, tran := range blk.Transfers {
			data = append(data, []string{
				strconv.FormatUint(blk.Number, 10),
				blk.BlockHash[:16] + "...",
				humanize.Comma(int64(blk.Nonce)),
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
	fmt.Println()
}

func printBalances(lgr *ledger.Ledger) {
	color.Cyan("== balances ==")

	all := lgr.Balances()
	accounts := make([]string, 0, len(all))
	for act := range all {
		accounts = append(accounts, act)
	}
	sort.Strings(accounts)

	data := make([][]string, 0, len(accounts))
	for _, act := range accounts {
		data = append(data, []string{act, strconv.FormatFloat(all[act], 'f', -1, 64)})
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"Account", "Balance"})
	table.Bulk(data)
	table.Render()
	fmt.Println()
}

func report(lgr *ledger.Ledger) {
	if err := lgr.Validate(); err != nil {
		color.Red("chain is INVALID: %v", err)
		fmt.Println()
		return
	}

	color.Green("chain is valid")
	fmt.Println()
}

// This program provides command line access to a running ledger node.
package main

import "github.com/saeed-moradi-98/rusty-blockchain/app/tooling/ledgerctl/cmd"

func main() {
	cmd.Execute()
}

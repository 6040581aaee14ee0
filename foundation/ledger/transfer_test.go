package ledger_test

import (
	"testing"

	"github.com/saeed-moradi-98/rusty-blockchain/foundation/ledger"
)

func Test_TransferRecord(t *testing.T) {
	type table struct {
		name string
		tx   ledger.Transfer
		rec  string
	}

	tt := []table{
		{
			name: "whole amount",
			tx:   ledger.Transfer{From: "Alice", To: "Bob", Amount: 50, TimeStamp: 1700000000},
			rec:  "AliceBob501700000000",
		},
		{
			name: "fractional amount",
			tx:   ledger.Transfer{From: "Bob", To: "Charlie", Amount: 25.5, TimeStamp: 1700000001},
			rec:  "BobCharlie25.51700000001",
		},
		{
			name: "negative amount",
			tx:   ledger.Transfer{From: "Charlie", To: "Charlie", Amount: -0.25, TimeStamp: 1700000002},
			rec:  "CharlieCharlie-0.251700000002",
		},
		{
			name: "zero value system transfer",
			tx:   ledger.Transfer{From: ledger.SystemAccount, To: ledger.GenesisAccount, Amount: 0, TimeStamp: 1700000003},
			rec:  "SystemGenesis01700000003",
		},
	}

	t.Log("Given the need to validate the canonical transfer serialization.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen serializing the %s transfer.", testID, tst.name)
			{
				got := tst.tx.Record()
				if got != tst.rec {
					t.Errorf("\t%s\tTest %d:\tShould serialize to %q, got %q.", failed, testID, tst.rec, got)
				} else {
					t.Logf("\t%s\tTest %d:\tShould serialize to %q.", success, testID, tst.rec)
				}

				if tst.tx.Record() != got {
					t.Errorf("\t%s\tTest %d:\tShould never vary across calls.", failed, testID)
				} else {
					t.Logf("\t%s\tTest %d:\tShould never vary across calls.", success, testID)
				}
			}
		}
	}
}

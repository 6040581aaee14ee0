package ledger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/saeed-moradi-98/rusty-blockchain/foundation/ledger"
)

func Test_HashDeterminism(t *testing.T) {
	t.Log("Given the need to validate block hashing is pure and deterministic.")
	{
		t.Logf("\tTest 0:\tWhen hashing the same block state repeatedly.")
		{
			block := ledger.Block{
				Number:    7,
				TimeStamp: 1700000000,
				Transfers: []ledger.Transfer{
					{From: "Alice", To: "Bob", Amount: 50, TimeStamp: 1700000000},
					{From: "Bob", To: "Charlie", Amount: 25.5, TimeStamp: 1700000001},
				},
				PrevBlockHash: strings.Repeat("a", 64),
				Nonce:         42,
				Difficulty:    2,
			}

			first := block.Hash()
			if len(first) != 64 {
				t.Fatalf("\t%s\tTest 0:\tShould produce a 64 hex character digest, got %d.", failed, len(first))
			}
			t.Logf("\t%s\tTest 0:\tShould produce a 64 hex character digest.", success)

			for i := 0; i < 10; i++ {
				if block.Hash() != first {
					t.Fatalf("\t%s\tTest 0:\tShould produce the same digest on every call.", failed)
				}
			}
			t.Logf("\t%s\tTest 0:\tShould produce the same digest on every call.", success)

			other := block
			if other.Hash() != first {
				t.Errorf("\t%s\tTest 0:\tShould produce the same digest for an identical copy.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould produce the same digest for an identical copy.", success)
			}

			other.Nonce++
			if other.Hash() == first {
				t.Errorf("\t%s\tTest 0:\tShould produce a different digest when the nonce changes.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould produce a different digest when the nonce changes.", success)
			}

			other = block
			other.Transfers[0].Amount = 1000
			if other.Hash() == first {
				t.Errorf("\t%s\tTest 0:\tShould produce a different digest when a transfer changes.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould produce a different digest when a transfer changes.", success)
			}
		}
	}
}

func Test_POWSatisfaction(t *testing.T) {
	difficulties := []uint{0, 1, 4}

	t.Log("Given the need to validate mining satisfies the difficulty target.")
	{
		for testID, difficulty := range difficulties {
			t.Logf("\tTest %d:\tWhen mining a block at difficulty %d.", testID, difficulty)
			{
				block := ledger.Block{
					Number:        1,
					TimeStamp:     1700000000,
					Transfers:     []ledger.Transfer{{From: "Alice", To: "Bob", Amount: 1, TimeStamp: 1700000000}},
					PrevBlockHash: strings.Repeat("b", 64),
					Difficulty:    difficulty,
				}

				if err := block.Mine(context.Background(), nil); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to mine the block: %v", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould be able to mine the block.", success, testID)

				target := strings.Repeat("0", int(difficulty))
				if !strings.HasPrefix(block.BlockHash, target) {
					t.Errorf("\t%s\tTest %d:\tShould have %d leading hex zeros, got %q.", failed, testID, difficulty, block.BlockHash)
				} else {
					t.Logf("\t%s\tTest %d:\tShould have %d leading hex zeros.", success, testID, difficulty)
				}

				if block.BlockHash != block.Hash() {
					t.Errorf("\t%s\tTest %d:\tShould store a hash that matches the block content.", failed, testID)
				} else {
					t.Logf("\t%s\tTest %d:\tShould store a hash that matches the block content.", success, testID)
				}
			}
		}
	}
}

func Test_MineCancellation(t *testing.T) {
	t.Log("Given the need to cancel an unbounded mining search.")
	{
		t.Logf("\tTest 0:\tWhen mining with an already cancelled context.")
		{
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			block := ledger.Block{
				Number:        1,
				TimeStamp:     1700000000,
				Transfers:     []ledger.Transfer{{From: "Alice", To: "Bob", Amount: 1, TimeStamp: 1700000000}},
				PrevBlockHash: strings.Repeat("c", 64),
				Difficulty:    64,
			}

			if err := block.Mine(ctx, nil); err == nil {
				t.Fatalf("\t%s\tTest 0:\tShould stop the search with the context error.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould stop the search with the context error.", success)
		}
	}
}

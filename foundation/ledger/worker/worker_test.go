package worker_test

import (
	"testing"
	"time"

	"github.com/saeed-moradi-98/rusty-blockchain/foundation/ledger"
	"github.com/saeed-moradi-98/rusty-blockchain/foundation/ledger/worker"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

func Test_Worker(t *testing.T) {
	t.Log("Given the need to mine pending transfers in the background.")
	{
		t.Logf("\tTest 0:\tWhen signaling a mining operation.")
		{
			l, err := ledger.New(ledger.Config{Difficulty: 1, MiningReward: 100})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the ledger: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to construct the ledger.", success)

			w := worker.Run(l, "Miner1", time.Hour, nil)
			defer w.Shutdown()

			if l.Worker == nil {
				t.Fatalf("\t%s\tTest 0:\tShould register the worker with the ledger.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould register the worker with the ledger.", success)

			l.SubmitTransfer(ledger.NewTransfer("Alice", "Bob", 50))
			l.Worker.SignalStartMining()

			deadline := time.Now().Add(10 * time.Second)
			for l.Height() < 2 && time.Now().Before(deadline) {
				time.Sleep(10 * time.Millisecond)
			}

			if l.Height() != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould have mined a second block, height %d.", failed, l.Height())
			}
			t.Logf("\t%s\tTest 0:\tShould have mined a second block.", success)

			if l.PendingCount() != 0 {
				t.Errorf("\t%s\tTest 0:\tShould have drained the pending pool, got %d.", failed, l.PendingCount())
			} else {
				t.Logf("\t%s\tTest 0:\tShould have drained the pending pool.", success)
			}

			if !l.IsValid() {
				t.Errorf("\t%s\tTest 0:\tShould have a valid chain after background mining.", failed)
			} else {
				t.Logf("\t%s\tTest 0:\tShould have a valid chain after background mining.", success)
			}
		}
	}
}

func Test_WorkerShutdown(t *testing.T) {
	t.Log("Given the need to shut down the worker cleanly.")
	{
		t.Logf("\tTest 0:\tWhen shutting down with no work in flight.")
		{
			l, err := ledger.New(ledger.Config{Difficulty: 1, MiningReward: 100})
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to construct the ledger: %v", failed, err)
			}

			w := worker.Run(l, "Miner1", time.Hour, nil)

			done := make(chan struct{})
			go func() {
				w.Shutdown()
				close(done)
			}()

			select {
			case <-done:
				t.Logf("\t%s\tTest 0:\tShould shut down promptly.", success)
			case <-time.After(5 * time.Second):
				t.Fatalf("\t%s\tTest 0:\tShould shut down promptly.", failed)
			}
		}
	}
}

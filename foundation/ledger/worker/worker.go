// Package worker implements background mining for the ledger. It owns the
// goroutine that drains the pending pool into new blocks, either when
// signaled or on a periodic tick.
package worker

import (
	"sync"
	"time"

	"github.com/saeed-moradi-98/rusty-blockchain/foundation/ledger"
)

// Worker manages the POW mining workflow for the ledger.
type Worker struct {
	ledger       *ledger.Ledger
	minerAccount string
	wg           sync.WaitGroup
	ticker       *time.Ticker
	shut         chan struct{}
	startMining  chan bool
	cancelMining chan bool
	evHandler    ledger.EventHandler
}

// Run creates a worker, registers the worker with the ledger, and starts
// the background mining goroutine. The drain interval is how often the
// pending pool is checked without an explicit signal.
func Run(lgr *ledger.Ledger, minerAccount string, drainInterval time.Duration, evHandler ledger.EventHandler) *Worker {
	if evHandler == nil {
		evHandler = func(v string, args ...any) {}
	}

	w := Worker{
		ledger:       lgr,
		minerAccount: minerAccount,
		ticker:       time.NewTicker(drainInterval),
		shut:         make(chan struct{}),
		startMining:  make(chan bool, 1),
		cancelMining: make(chan bool, 1),
		evHandler:    evHandler,
	}

	// Register this worker with the ledger.
	lgr.Worker = &w

	w.wg.Add(1)

	// We don't want to return until we know the G is up and running.
	hasStarted := make(chan bool)

	go func() {
		defer w.wg.Done()
		hasStarted <- true
		w.miningOperations()
	}()

	<-hasStarted

	return &w
}

// =============================================================================
// These methods implement the ledger.Worker interface.

// Shutdown terminates the goroutine performing work.
func (w *Worker) Shutdown() {
	w.evHandler("worker: shutdown: started")
	defer w.evHandler("worker: shutdown: completed")

	w.ticker.Stop()
	w.SignalCancelMining()

	close(w.shut)
	w.wg.Wait()
}

// SignalStartMining starts a mining operation. If there is already a signal
// pending in the channel, just return since a mining operation will start.
func (w *Worker) SignalStartMining() {
	select {
	case w.startMining <- true:
	default:
	}
	w.evHandler("worker: SignalStartMining: mining signaled")
}

// SignalCancelMining signals the goroutine executing the mining operation
// to cancel the current nonce search.
func (w *Worker) SignalCancelMining() {
	select {
	case w.cancelMining <- true:
	default:
	}
	w.evHandler("worker: SignalCancelMining: MINING: CANCEL: signaled")
}

// =============================================================================

// miningOperations handles mining signals and the periodic pool drain.
func (w *Worker) miningOperations() {
	w.evHandler("worker: miningOperations: G started")
	defer w.evHandler("worker: miningOperations: G completed")

	for {
		select {
		case <-w.startMining:
			if !w.isShutdown() {
				w.runMiningOperation()
			}
		case <-w.ticker.C:
			if !w.isShutdown() {
				w.runMiningOperation()
			}
		case <-w.shut:
			w.evHandler("worker: miningOperations: received shut signal")
			return
		}
	}
}

// isShutdown is used to test if a shutdown has been signaled.
func (w *Worker) isShutdown() bool {
	select {
	case <-w.shut:
		return true
	default:
		return false
	}
}

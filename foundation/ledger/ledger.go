// Package ledger implements a minimal proof-of-work ledger. Value
// transfers accumulate in a pending pool, get batched into cryptographically
// linked blocks found by brute force nonce search, and the resulting chain
// can be checked end to end for structural and computational integrity.
package ledger

import (
	"context"
	"fmt"
	"sync"
)

// EventHandler defines a function that is called when events occur in the
// processing and mining of blocks.
type EventHandler func(v string, args ...any)

// Worker interface represents the behavior required to be implemented by
// any package providing support for background mining.
type Worker interface {
	Shutdown()
	SignalStartMining()
	SignalCancelMining()
}

// =============================================================================

// InvalidBlockError identifies the first block that failed chain
// validation and why.
type InvalidBlockError struct {
	Number uint64
	Reason string
}

// Error implements the error interface.
func (ibe *InvalidBlockError) Error() string {
	return fmt.Sprintf("block %d invalid: %s", ibe.Number, ibe.Reason)
}

// =============================================================================

// Config represents the configuration required to construct a ledger.
type Config struct {
	Difficulty   uint
	MiningReward float64
	EvHandler    EventHandler
}

// Ledger manages the append-only chain of blocks and the pool of pending
// transfers. A single mutex guards both, so a mining operation observes a
// consistent snapshot of the pool and the chain tail, and no other
// mutation interleaves with the hash search for the same batch.
type Ledger struct {
	mu sync.Mutex

	difficulty   uint
	miningReward float64
	evHandler    EventHandler
	chain        []*Block
	pending      []Transfer

	// Worker is not set here. The call to worker.Run will assign itself
	// when background mining is wanted.
	Worker Worker
}

// New constructs a new ledger and synchronously mines the genesis block, a
// single zero value System to Genesis transfer with the parent hash
// sentinel. The chain is therefore never empty.
func New(cfg Config) (*Ledger, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	l := Ledger{
		difficulty:   cfg.Difficulty,
		miningReward: cfg.MiningReward,
		evHandler:    ev,
	}

	genesis := newBlock(0, []Transfer{NewTransfer(SystemAccount, GenesisAccount, 0)}, ZeroHash, cfg.Difficulty)
	if err := genesis.Mine(context.Background(), ev); err != nil {
		return nil, err
	}
	l.chain = append(l.chain, genesis)

	return &l, nil
}

// SubmitTransfer appends a transfer to the pending pool. No validation is
// performed and insertion order is preserved into the next mined block.
func (l *Ledger) SubmitTransfer(tx Transfer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pending = append(l.pending, tx)
	l.evHandler("ledger: submit: pool[%d]: %s -> %s: amount[%v]", len(l.pending), tx.From, tx.To, tx.Amount)
}

// MinePending appends the mining reward transfer for the specified miner to
// the pending pool, batches the whole pool into the next block, mines it and
// appends it to the chain. The pool is cleared only after the block is
// appended. The context cancels the nonce search.
func (l *Ledger) MinePending(ctx context.Context, minerAccount string) (*Block, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	transfers := make([]Transfer, 0, len(l.pending)+1)
	transfers = append(transfers, l.pending...)
	transfers = append(transfers, NewTransfer(SystemAccount, minerAccount, l.miningReward))

	latest := l.latestBlock()
	block := newBlock(latest.Number+1, transfers, latest.BlockHash, l.difficulty)

	if err := block.Mine(ctx, l.evHandler); err != nil {
		return nil, err
	}

	l.chain = append(l.chain, block)
	l.pending = nil

	return block, nil
}

// Validate checks the structural and computational integrity of the whole
// chain. For every block past genesis it recomputes the content hash,
// checks the parent linkage and checks the stored hash satisfies the
// block's own difficulty. It returns an InvalidBlockError for the first
// failing block, or nil when the chain is intact.
func (l *Ledger) Validate() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := 1; i < len(l.chain); i++ {
		block := l.chain[i]
		prevBlock := l.chain[i-1]

		// Any field tampering, including transfer amounts, changes the
		// recomputed hash.
		if block.BlockHash != block.Hash() {
			return &InvalidBlockError{Number: block.Number, Reason: "block hash does not match content"}
		}

		if block.PrevBlockHash != prevBlock.BlockHash {
			return &InvalidBlockError{Number: block.Number, Reason: "parent hash does not match previous block"}
		}

		if !isHashSolved(block.Difficulty, block.BlockHash) {
			return &InvalidBlockError{Number: block.Number, Reason: "hash does not satisfy the proof of work"}
		}
	}

	return nil
}

// IsValid reports whether the whole chain passes Validate.
func (l *Ledger) IsValid() bool {
	return l.Validate() == nil
}

// BalanceOf scans every transfer in every block and returns the signed net
// balance for the account: debited when sending, credited when receiving.
// Accounts that never appear have a zero balance.
func (l *Ledger) BalanceOf(account string) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	var balance float64
	for _, block := range l.chain {
		for _, tx := range block.Transfers {
			if tx.From == account {
				balance -= tx.Amount
			}
			if tx.To == account {
				balance += tx.Amount
			}
		}
	}

	return balance
}

// Balances returns the net balance for every account that appears in the
// chain.
func (l *Ledger) Balances() map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	balances := make(map[string]float64)
	for _, block := range l.chain {
		for _, tx := range block.Transfers {
			balances[tx.From] -= tx.Amount
			balances[tx.To] += tx.Amount
		}
	}

	return balances
}

// Blocks returns the blocks in chain order. The returned slice is a copy;
// the blocks themselves are shared and must be treated as read only.
func (l *Ledger) Blocks() []*Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	blocks := make([]*Block, len(l.chain))
	copy(blocks, l.chain)

	return blocks
}

// LatestBlock returns the last block in the chain.
func (l *Ledger) LatestBlock() *Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.latestBlock()
}

// Height returns the number of blocks in the chain.
func (l *Ledger) Height() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.chain)
}

// Pending returns a copy of the pending transfer pool in insertion order.
func (l *Ledger) Pending() []Transfer {
	l.mu.Lock()
	defer l.mu.Unlock()

	pending := make([]Transfer, len(l.pending))
	copy(pending, l.pending)

	return pending
}

// PendingCount returns the current number of transfers in the pool.
func (l *Ledger) PendingCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.pending)
}

// Difficulty returns the proof of work target applied to newly mined blocks.
func (l *Ledger) Difficulty() uint {
	return l.difficulty
}

// MiningReward returns the reward paid to the miner of each new block.
func (l *Ledger) MiningReward() float64 {
	return l.miningReward
}

// =============================================================================

// latestBlock returns the last block. It is the caller's responsibility to
// hold the mutex. An empty chain is a programming error: the genesis block
// is created at construction and the chain never shrinks.
func (l *Ledger) latestBlock() *Block {
	if len(l.chain) == 0 {
		panic("ledger: chain is empty, genesis invariant violated")
	}

	return l.chain[len(l.chain)-1]
}

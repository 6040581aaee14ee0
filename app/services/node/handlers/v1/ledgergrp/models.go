package ledgergrp

import "github.com/saeed-moradi-98/rusty-blockchain/foundation/ledger"

// submitTx is what a client submits to queue a transfer. Senders are
// unauthenticated labels; no signature accompanies the transfer.
type submitTx struct {
	From   string  `json:"from" validate:"required"`
	To     string  `json:"to" validate:"required"`
	Amount float64 `json:"amount"`
}

type tx struct {
	From      string  `json:"from"`
	To        string  `json:"to"`
	Amount    float64 `json:"amount"`
	TimeStamp int64   `json:"timestamp"`
}

func toTx(tran ledger.Transfer) tx {
	return tx{
		From:      tran.From,
		To:        tran.To,
		Amount:    tran.Amount,
		TimeStamp: tran.TimeStamp,
	}
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

func toBlock(blk *ledger.Block) block {
	trans := make([]tx, len(blk.Transfers))
	for i, tran := range blk.Transfers {
		trans[i] = toTx(tran)
	}

	return block{
		Number:        blk.Number,
		TimeStamp:     blk.TimeStamp,
		PrevBlockHash: blk.PrevBlockHash,
		Hash:          blk.BlockHash,
		Nonce:         blk.Nonce,
		Difficulty:    blk.Difficulty,
		Transfers:     trans,
	}
}

type balance struct {
	Account string  `json:"account"`
	Balance float64 `json:"balance"`
}

type balances struct {
	LatestBlock string    `json:"latest_block"`
	Uncommitted int       `json:"uncommitted"`
	Balances    []balance `json:"balances"`
}

type info struct {
	Height       int     `json:"height"`
	LatestBlock  string  `json:"latest_block"`
	Difficulty   uint    `json:"difficulty"`
	MiningReward float64 `json:"mining_reward"`
	Uncommitted  int     `json:"uncommitted"`
}

type validity struct {
	Valid       bool   `json:"valid"`
	FailedBlock uint64 `json:"failed_block,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

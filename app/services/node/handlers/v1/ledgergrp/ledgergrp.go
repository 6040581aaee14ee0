// Package ledgergrp maintains the group of handlers for ledger access.
package ledgergrp

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/gorilla/websocket"
	"github.com/saeed-moradi-98/rusty-blockchain/foundation/events"
	"github.com/saeed-moradi-98/rusty-blockchain/foundation/ledger"
	"github.com/saeed-moradi-98/rusty-blockchain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of ledger endpoints.
type Handlers struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
	WS     websocket.Upgrader
	Evts   *events.Events
}

// Events handles a web socket to provide mining events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// SubmitTransfer queues a new transfer into the pending pool and signals
// the background worker that there is work to mine.
func (h Handlers) SubmitTransfer(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var newTx submitTx
	if err := web.Decode(r, &newTx); err != nil {
		return err
	}

	tran := ledger.NewTransfer(newTx.From, newTx.To, newTx.Amount)
	h.Ledger.SubmitTransfer(tran)
	h.Log.Infow("add transfer", "traceid", v.TraceID, "from", tran.From, "to", tran.To, "amount", tran.Amount)

	if h.Ledger.Worker != nil {
		h.Ledger.Worker.SignalStartMining()
	}

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "transfer added to pending pool",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// SignalMining signals the background worker to drain the pending pool
// into a new block.
func (h Handlers) SignalMining(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	if h.Ledger.Worker == nil {
		return web.Respond(ctx, w, struct {
			Status string `json:"status"`
		}{Status: "no background worker running"}, http.StatusServiceUnavailable)
	}

	h.Ledger.Worker.SignalStartMining()

	resp := struct {
		Status string `json:"status"`
	}{
		Status: "mining signaled",
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Info returns the current shape of the chain.
func (h Handlers) Info(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	nfo := info{
		Height:       h.Ledger.Height(),
		LatestBlock:  h.Ledger.LatestBlock().BlockHash,
		Difficulty:   h.Ledger.Difficulty(),
		MiningReward: h.Ledger.MiningReward(),
		Uncommitted:  h.Ledger.PendingCount(),
	}

	return web.Respond(ctx, w, nfo, http.StatusOK)
}

// Validate checks the integrity of the whole chain and reports the first
// failing block if there is one.
func (h Handlers) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	vld := validity{Valid: true}

	if err := h.Ledger.Validate(); err != nil {
		vld.Valid = false
		vld.Reason = err.Error()

		var ibe *ledger.InvalidBlockError
		if errors.As(err, &ibe) {
			vld.FailedBlock = ibe.Number
			vld.Reason = ibe.Reason
		}
	}

	return web.Respond(ctx, w, vld, http.StatusOK)
}

// Pending returns the uncommitted transfers in insertion order.
func (h Handlers) Pending(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	pool := h.Ledger.Pending()

	trans := make([]tx, len(pool))
	for i, tran := range pool {
		trans[i] = toTx(tran)
	}

	return web.Respond(ctx, w, trans, http.StatusOK)
}

// Balances returns the current net balances, for all accounts or for the
// one specified in the route.
func (h Handlers) Balances(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	account := web.Param(r, "account")

	all := h.Ledger.Balances()

	acts := make([]balance, 0, len(all))
	switch account {
	case "":
		for act, bal := range all {
			acts = append(acts, balance{Account: act, Balance: bal})
		}
		sort.Slice(acts, func(i, j int) bool { return acts[i].Account < acts[j].Account })

	default:
		acts = append(acts, balance{Account: account, Balance: h.Ledger.BalanceOf(account)})
	}

	bals := balances{
		LatestBlock: h.Ledger.LatestBlock().BlockHash,
		Uncommitted: h.Ledger.PendingCount(),
		Balances:    acts,
	}

	return web.Respond(ctx, w, bals, http.StatusOK)
}

// Blocks returns the blocks in the chain, optionally only those that
// involve the account specified in the route.
func (h Handlers) Blocks(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	account := web.Param(r, "account")

	var blocks []block
	for _, blk := range h.Ledger.Blocks() {
		if account != "" && !involvesAccount(blk, account) {
			continue
		}
		blocks = append(blocks, toBlock(blk))
	}

	if len(blocks) == 0 {
		return web.Respond(ctx, w, nil, http.StatusNoContent)
	}

	return web.Respond(ctx, w, blocks, http.StatusOK)
}

// =============================================================================

// involvesAccount reports whether any transfer in the block names the
// account as sender or receiver.
func involvesAccount(blk *ledger.Block, account string) bool {
	for _, tran := range blk.Transfers {
		if tran.From == account || tran.To == account {
			return true
		}
	}
	return false
}

package ledgergrp_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/goccy/go-json"
	"github.com/saeed-moradi-98/rusty-blockchain/app/services/node/handlers"
	"github.com/saeed-moradi-98/rusty-blockchain/foundation/events"
	"github.com/saeed-moradi-98/rusty-blockchain/foundation/ledger"
	"go.uber.org/zap"
)

func newTestMux(t *testing.T) (http.Handler, *ledger.Ledger) {
	t.Helper()

	lgr, err := ledger.New(ledger.Config{Difficulty: 1, MiningReward: 100})
	if err != nil {
		t.Fatalf("constructing ledger: %v", err)
	}

	mux := handlers.PublicMux(handlers.MuxConfig{
		Shutdown: make(chan os.Signal, 1),
		Log:      zap.NewNop().Sugar(),
		Ledger:   lgr,
		Evts:     events.New(),
	})

	return mux, lgr
}

func TestSubmitTransfer(t *testing.T) {
	mux, lgr := newTestMux(t)

	body := `{"from":"Alice","to":"Bob","amount":50}`
	r := httptest.NewRequest(http.MethodPost, "/v1/tx/submit", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, w.Code, http.StatusOK)
	assert.Equal(t, lgr.PendingCount(), 1)
	assert.Equal(t, lgr.Pending()[0].From, "Alice")
}

func TestSubmitTransferValidation(t *testing.T) {
	mux, lgr := newTestMux(t)

	// Missing the required from field.
	body := `{"to":"Bob","amount":50}`
	r := httptest.NewRequest(http.MethodPost, "/v1/tx/submit", strings.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, w.Code, http.StatusBadRequest)
	assert.Equal(t, lgr.PendingCount(), 0)
}

func TestValidateEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	r := httptest.NewRequest(http.MethodGet, "/v1/chain/validate", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, w.Code, http.StatusOK)

	var resp struct {
		Valid bool `json:"valid"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}
	assert.Equal(t, resp.Valid, true)
}

func TestBlocksEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	r := httptest.NewRequest(http.MethodGet, "/v1/blocks/list", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, w.Code, http.StatusOK)

	var blocks []struct {
		Number        uint64 `json:"number"`
		PrevBlockHash string `json:"prev_block_hash"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &blocks); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}

	assert.Equal(t, len(blocks), 1)
	assert.Equal(t, blocks[0].Number, uint64(0))
	assert.Equal(t, blocks[0].PrevBlockHash, ledger.ZeroHash)
}

func TestBlocksByAccountNoContent(t *testing.T) {
	mux, _ := newTestMux(t)

	r := httptest.NewRequest(http.MethodGet, "/v1/blocks/list/Nobody", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, w.Code, http.StatusNoContent)
}

func TestInfoEndpoint(t *testing.T) {
	mux, lgr := newTestMux(t)

	r := httptest.NewRequest(http.MethodGet, "/v1/ledger/info", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, w.Code, http.StatusOK)

	var nfo struct {
		Height      int    `json:"height"`
		LatestBlock string `json:"latest_block"`
		Difficulty  uint   `json:"difficulty"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &nfo); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}

	assert.Equal(t, nfo.Height, 1)
	assert.Equal(t, nfo.Difficulty, uint(1))
	assert.Equal(t, nfo.LatestBlock, lgr.LatestBlock().BlockHash)
}

func TestBalancesEndpoint(t *testing.T) {
	mux, lgr := newTestMux(t)

	lgr.SubmitTransfer(ledger.NewTransfer("Alice", "Bob", 50))

	r := httptest.NewRequest(http.MethodGet, "/v1/balances/list/Alice", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	assert.Equal(t, w.Code, http.StatusOK)

	var bals struct {
		Uncommitted int `json:"uncommitted"`
		Balances    []struct {
			Account string  `json:"account"`
			Balance float64 `json:"balance"`
		} `json:"balances"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &bals); err != nil {
		t.Fatalf("unmarshaling response: %v", err)
	}

	// The submitted transfer is still pending, so it does not affect the
	// mined balance.
	assert.Equal(t, bals.Uncommitted, 1)
	assert.Equal(t, len(bals.Balances), 1)
	assert.Equal(t, bals.Balances[0].Account, "Alice")
	assert.Equal(t, bals.Balances[0].Balance, float64(0))
}

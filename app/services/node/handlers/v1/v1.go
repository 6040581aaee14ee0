// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"net/http"

	"github.com/saeed-moradi-98/rusty-blockchain/app/services/node/handlers/v1/ledgergrp"
	"github.com/saeed-moradi-98/rusty-blockchain/foundation/events"
	"github.com/saeed-moradi-98/rusty-blockchain/foundation/ledger"
	"github.com/saeed-moradi-98/rusty-blockchain/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log    *zap.SugaredLogger
	Ledger *ledger.Ledger
	Evts   *events.Events
}

// PublicRoutes binds all the version 1 public routes.
func PublicRoutes(app *web.App, cfg Config) {
	lgh := ledgergrp.Handlers{
		Log:    cfg.Log,
		Ledger: cfg.Ledger,
		Evts:   cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", lgh.Events)
	app.Handle(http.MethodGet, version, "/ledger/info", lgh.Info)
	app.Handle(http.MethodGet, version, "/chain/validate", lgh.Validate)
	app.Handle(http.MethodGet, version, "/balances/list", lgh.Balances)
	app.Handle(http.MethodGet, version, "/balances/list/:account", lgh.Balances)
	app.Handle(http.MethodGet, version, "/blocks/list", lgh.Blocks)
	app.Handle(http.MethodGet, version, "/blocks/list/:account", lgh.Blocks)
	app.Handle(http.MethodGet, version, "/mining/signal", lgh.SignalMining)
	app.Handle(http.MethodGet, version, "/tx/uncommitted/list", lgh.Pending)
	app.Handle(http.MethodPost, version, "/tx/submit", lgh.SubmitTransfer)
}

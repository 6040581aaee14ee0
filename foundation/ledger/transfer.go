package ledger

import (
	"strconv"
	"time"
)

// Well known accounts. The system account is the source of the genesis
// transfer and of every mining reward.
const (
	SystemAccount  = "System"
	GenesisAccount = "Genesis"
)

// Transfer represents a single movement of value between two parties.
// Senders are unauthenticated labels; no signature scheme is applied.
type Transfer struct {
	From      string  `json:"from"`   // Account the value is moving from.
	To        string  `json:"to"`     // Account the value is moving to.
	Amount    float64 `json:"amount"` // Value being transferred, may be negative or zero.
	TimeStamp int64   `json:"timestamp"`
}

// NewTransfer constructs a new Transfer stamped with the current time.
// Amounts are taken as given; the model performs no validation of the
// parties or the sign of the amount.
func NewTransfer(from string, to string, amount float64) Transfer {
	return Transfer{
		From:      from,
		To:        to,
		Amount:    amount,
		TimeStamp: time.Now().UTC().Unix(),
	}
}

// Record returns the canonical serialization of the transfer that is fed
// into the block hash. The concatenation order and the numeric formatting
// are fixed: the same transfer must always produce the same string.
func (tx Transfer) Record() string {
	return tx.From + tx.To + strconv.FormatFloat(tx.Amount, 'f', -1, 64) + strconv.FormatInt(tx.TimeStamp, 10)
}

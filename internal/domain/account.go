package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account is the running balance snapshot for one client.
// Invariant: Total == Available + Held after every recorded transaction.
type Account struct {
	Client    uint16
	Available decimal.Decimal // funds free to withdraw
	Held      decimal.Decimal // funds frozen pending dispute resolution
	Total     decimal.Decimal
	// Locked is set by a chargeback and is terminal: a locked account
	// ignores every further transaction.
	Locked bool
}

// NewAccount returns a zeroed, unlocked account for the client.
func NewAccount(client uint16) *Account {
	return &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
}

// FormatAmount renders a balance with up to 4 fractional digits, trailing
// zeros stripped: "1.5000" -> "1.5", "3.0000" -> "3".
func FormatAmount(d decimal.Decimal) string {
	s := d.StringFixed(4)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

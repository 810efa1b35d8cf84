package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TransactionType is the kind token of an input row. Tokens outside the
// known set are carried through as-is so new kinds coming from the partner
// don't fail parsing; the engine ignores them.
type TransactionType string

const (
	TxDeposit    TransactionType = "deposit"
	TxWithdrawal TransactionType = "withdrawal"
	TxDispute    TransactionType = "dispute"
	TxResolve    TransactionType = "resolve"
	TxChargeback TransactionType = "chargeback"
)

// ParseTransactionType matches a raw token case-insensitively against the
// known kinds. Unknown tokens are preserved verbatim.
func ParseTransactionType(raw string) TransactionType {
	switch strings.ToLower(raw) {
	case "deposit":
		return TxDeposit
	case "withdrawal":
		return TxWithdrawal
	case "dispute":
		return TxDispute
	case "resolve":
		return TxResolve
	case "chargeback":
		return TxChargeback
	default:
		return TransactionType(raw)
	}
}

// Known reports whether the type is one of the five handled kinds.
func (t TransactionType) Known() bool {
	switch t {
	case TxDeposit, TxWithdrawal, TxDispute, TxResolve, TxChargeback:
		return true
	}
	return false
}

// Transaction is one parsed input event. Immutable after construction;
// deposits and withdrawals are retained by the ledger keyed by Tx so later
// dispute/resolve/chargeback events can reference them.
type Transaction struct {
	Type   TransactionType
	Client uint16
	Tx     uint32
	// Amount is present for deposits and withdrawals, absent for the
	// dispute lifecycle kinds.
	Amount *decimal.Decimal
}

// ParseAmount parses an optional monetary field. Empty means absent.
// Values are limited to 4 fractional digits using banker's rounding.
func ParseAmount(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	d = d.RoundBank(4)
	return &d, nil
}

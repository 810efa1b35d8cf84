package ledger

import (
	"ledger-service/internal/domain"
)

// Service replays a stream of transactions against per-client accounts.
// It owns all mutable ledger state: the accounts, the history of disputable
// transactions, and the dispute lifecycle sets. Not safe for concurrent use;
// callers feed transactions one at a time in input order.
type Service struct {
	accounts map[uint16]*domain.Account
	// disputable holds every applied deposit and withdrawal, keyed by
	// transaction id, so later dispute events can recover amount and client.
	disputable map[uint32]domain.Transaction
	disputed   map[uint32]struct{}
	resolved   map[uint32]struct{}
}

// New returns an empty ledger.
func New() *Service {
	return &Service{
		accounts:   make(map[uint16]*domain.Account),
		disputable: make(map[uint32]domain.Transaction),
		disputed:   make(map[uint32]struct{}),
		resolved:   make(map[uint32]struct{}),
	}
}

// Record applies one transaction to the ledger. It operates on good will:
// the partner system is known to occasionally send logically invalid events
// (disputing an unknown transaction, overdrawing, referencing another
// client's transaction), and those must not corrupt state or halt the
// replay. Every invalid condition is a silent no-op, so Record never fails.
func (s *Service) Record(tx domain.Transaction) {
	account, ok := s.accounts[tx.Client]
	if !ok {
		account = domain.NewAccount(tx.Client)
		s.accounts[tx.Client] = account
	}
	// a locked account is inert regardless of the transaction kind
	if account.Locked {
		return
	}

	switch tx.Type {
	case domain.TxDeposit:
		// deposits must carry an amount; a missing one is a partner error
		if tx.Amount == nil {
			return
		}
		account.Available = account.Available.Add(*tx.Amount)
		account.Total = account.Total.Add(*tx.Amount)
		s.disputable[tx.Tx] = tx

	case domain.TxWithdrawal:
		if tx.Amount == nil {
			return
		}
		// never overdraw; insufficient funds means the withdrawal is dropped
		if tx.Amount.GreaterThan(account.Available) {
			return
		}
		account.Available = account.Available.Sub(*tx.Amount)
		account.Total = account.Total.Sub(*tx.Amount)
		s.disputable[tx.Tx] = tx

	case domain.TxDispute:
		stored, ok := s.lookupStored(tx)
		if !ok {
			return
		}
		amount := *stored.Amount
		account.Available = account.Available.Sub(amount)
		account.Held = account.Held.Add(amount)
		s.disputed[tx.Tx] = struct{}{}

	case domain.TxResolve:
		if _, ok := s.disputed[tx.Tx]; !ok {
			return
		}
		// already resolved; resolving twice would double-release the hold
		if _, ok := s.resolved[tx.Tx]; ok {
			return
		}
		stored, ok := s.lookupStored(tx)
		if !ok {
			return
		}
		amount := *stored.Amount
		account.Held = account.Held.Sub(amount)
		account.Available = account.Available.Add(amount)
		s.resolved[tx.Tx] = struct{}{}

	case domain.TxChargeback:
		if _, ok := s.disputed[tx.Tx]; !ok {
			return
		}
		stored, ok := s.lookupStored(tx)
		if !ok {
			return
		}
		amount := *stored.Amount
		// the dispute was resolved but is now being pushed to chargeback
		// anyway: undo the resolve first, then charge back from held
		if _, ok := s.resolved[tx.Tx]; ok {
			account.Held = account.Held.Add(amount)
			account.Available = account.Available.Sub(amount)
			delete(s.resolved, tx.Tx)
		}
		account.Held = account.Held.Sub(amount)
		account.Total = account.Total.Sub(amount)
		account.Locked = true
	}
	// unrecognized kinds fall through as no-ops
}

// lookupStored fetches the disputable transaction referenced by a dispute
// lifecycle event and validates it: it must exist, belong to the same
// client, and carry an amount.
func (s *Service) lookupStored(tx domain.Transaction) (domain.Transaction, bool) {
	stored, ok := s.disputable[tx.Tx]
	if !ok {
		return domain.Transaction{}, false
	}
	if stored.Client != tx.Client {
		return domain.Transaction{}, false
	}
	if stored.Amount == nil {
		return domain.Transaction{}, false
	}
	return stored, true
}

// Summary returns every account seen so far, keyed by client id, in no
// guaranteed order. Read-only with respect to replay; safe to call
// mid-stream since accounts are consistent after every Record.
func (s *Service) Summary() map[uint16]*domain.Account {
	return s.accounts
}

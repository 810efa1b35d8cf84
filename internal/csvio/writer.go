package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"ledger-service/internal/domain"
)

// WriteSummary renders the final account snapshot as CSV with the header
// client,available,held,total,locked. The engine returns accounts in map
// order, so rows are sorted by client id here to keep output diffable.
func WriteSummary(w io.Writer, accounts map[uint16]*domain.Account) error {
	clients := make([]uint16, 0, len(accounts))
	for client := range accounts {
		clients = append(clients, client)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i] < clients[j] })

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for _, client := range clients {
		account := accounts[client]
		record := []string{
			strconv.FormatUint(uint64(account.Client), 10),
			domain.FormatAmount(account.Available),
			domain.FormatAmount(account.Held),
			domain.FormatAmount(account.Total),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write summary row for client %d: %w", client, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush account summary: %w", err)
	}
	return nil
}

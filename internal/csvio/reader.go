package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"ledger-service/internal/domain"
)

// Reader streams transactions out of a CSV source with the fixed column
// layout type,client,tx,amount. Parsing is best-effort: a row that cannot
// be turned into a well-formed transaction is dropped (and reported on the
// diagnostics logger), never surfaced as an error. Only the underlying
// stream failing ends the replay abnormally.
type Reader struct {
	csv  *csv.Reader
	diag *zap.Logger
	// row is the 1-based data row number, used in diagnostics. The header
	// is not counted.
	row        int
	headerRead bool
}

// NewReader wraps r. diag receives one entry per dropped row; pass nil to
// discard diagnostics.
func NewReader(r io.Reader, diag *zap.Logger) *Reader {
	cr := csv.NewReader(r)
	// field count is validated per row so short non-monetary rows pass
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if diag == nil {
		diag = zap.NewNop()
	}
	return &Reader{csv: cr, diag: diag}
}

// Next returns the next well-formed transaction. It returns io.EOF when the
// stream is exhausted; any other error is an infrastructure failure of the
// underlying stream.
func (r *Reader) Next() (domain.Transaction, error) {
	for {
		record, err := r.csv.Read()
		if err == io.EOF {
			return domain.Transaction{}, io.EOF
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			r.row++
			r.drop(parseErr)
			continue
		}
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("read transactions stream: %w", err)
		}

		if !r.headerRead {
			r.headerRead = true
			continue
		}
		r.row++

		tx, err := parseRecord(record)
		if err != nil {
			r.drop(err)
			continue
		}
		return tx, nil
	}
}

func (r *Reader) drop(err error) {
	r.diag.Warn("dropping unparseable row",
		zap.Int("row", r.row),
		zap.Error(err),
	)
}

func parseRecord(record []string) (domain.Transaction, error) {
	if len(record) < 3 || len(record) > 4 {
		return domain.Transaction{}, fmt.Errorf("expected 3 or 4 fields, got %d", len(record))
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}

	client, err := strconv.ParseUint(record[1], 10, 16)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid client id %q: %w", record[1], err)
	}
	txID, err := strconv.ParseUint(record[2], 10, 32)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("invalid transaction id %q: %w", record[2], err)
	}

	tx := domain.Transaction{
		Type:   domain.ParseTransactionType(record[0]),
		Client: uint16(client),
		Tx:     uint32(txID),
	}
	if len(record) == 4 {
		tx.Amount, err = domain.ParseAmount(record[3])
		if err != nil {
			return domain.Transaction{}, fmt.Errorf("invalid amount %q: %w", record[3], err)
		}
	}
	return tx, nil
}

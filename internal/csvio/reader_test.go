package csvio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"ledger-service/internal/domain"
)

func readAll(t *testing.T, input string, diag *zap.Logger) []domain.Transaction {
	t.Helper()

	r := NewReader(strings.NewReader(input), diag)
	var txs []domain.Transaction
	for {
		tx, err := r.Next()
		if err == io.EOF {
			return txs
		}
		require.NoError(t, err)
		txs = append(txs, tx)
	}
}

func TestReaderParsesStream(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,100.50\n" +
		"withdrawal,1,2,40\n" +
		"dispute,1,1,\n" +
		"resolve,1,1,\n" +
		"chargeback,1,1,\n"

	txs := readAll(t, input, nil)
	require.Len(t, txs, 5)

	assert.Equal(t, domain.TxDeposit, txs[0].Type)
	assert.Equal(t, uint16(1), txs[0].Client)
	assert.Equal(t, uint32(1), txs[0].Tx)
	require.NotNil(t, txs[0].Amount)
	assert.Equal(t, "100.5", txs[0].Amount.String())

	assert.Equal(t, domain.TxWithdrawal, txs[1].Type)
	assert.Equal(t, domain.TxDispute, txs[2].Type)
	assert.Nil(t, txs[2].Amount)
	assert.Equal(t, domain.TxResolve, txs[3].Type)
	assert.Equal(t, domain.TxChargeback, txs[4].Type)
}

func TestReaderTrimsWhitespace(t *testing.T) {
	input := "type, client, tx, amount\n" +
		" deposit , 1 , 1 , 2.5 \n"

	txs := readAll(t, input, nil)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.TxDeposit, txs[0].Type)
	assert.Equal(t, uint16(1), txs[0].Client)
	require.NotNil(t, txs[0].Amount)
	assert.Equal(t, "2.5", txs[0].Amount.String())
}

func TestReaderKeepsUnknownKinds(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"transfer,1,1,5\n"

	txs := readAll(t, input, nil)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.TransactionType("transfer"), txs[0].Type)
	assert.False(t, txs[0].Type.Known())
}

func TestReaderAcceptsShortNonMonetaryRows(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"dispute,1,1\n"

	txs := readAll(t, input, nil)
	require.Len(t, txs, 1)
	assert.Equal(t, domain.TxDispute, txs[0].Type)
	assert.Nil(t, txs[0].Amount)
}

func TestReaderDropsMalformedRows(t *testing.T) {
	core, logged := observer.New(zap.WarnLevel)
	diag := zap.New(core)

	input := "type,client,tx,amount\n" +
		"deposit,1,1,100\n" +
		"deposit,not-a-client,2,5\n" +
		"deposit,2,not-a-tx,5\n" +
		"deposit,3,3,not-an-amount\n" +
		"deposit,4\n" +
		"deposit,70000,5,5\n" +
		"withdrawal,2,6,25\n"

	txs := readAll(t, input, diag)
	require.Len(t, txs, 2)
	assert.Equal(t, uint32(1), txs[0].Tx)
	assert.Equal(t, uint32(6), txs[1].Tx)

	entries := logged.All()
	require.Len(t, entries, 5)
	// row numbers are 1-based over data rows, header excluded
	rows := make([]int64, 0, len(entries))
	for _, entry := range entries {
		assert.Equal(t, "dropping unparseable row", entry.Message)
		rows = append(rows, entry.ContextMap()["row"].(int64))
	}
	assert.Equal(t, []int64{2, 3, 4, 5, 6}, rows)
}

func TestReaderEmptyStream(t *testing.T) {
	txs := readAll(t, "", nil)
	assert.Empty(t, txs)

	txs = readAll(t, "type,client,tx,amount\n", nil)
	assert.Empty(t, txs)
}

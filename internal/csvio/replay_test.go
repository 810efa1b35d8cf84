package csvio

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-service/internal/usecase/ledger"
)

// End-to-end over the in-process pipeline: CSV in, replay, CSV out.
func TestReplayRoundTrip(t *testing.T) {
	input := "type,client,tx,amount\n" +
		"deposit,1,1,50\n" +
		"deposit,2,2,100\n" +
		"withdrawal,2,3,25.5\n" +
		"dispute,1,1,\n" +
		"chargeback,1,1,\n" +
		"garbage row that fails to parse\n" +
		"deposit,3,4,0.0001\n"

	service := ledger.New()
	r := NewReader(strings.NewReader(input), nil)
	for {
		tx, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		service.Record(tx)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, service.Summary()))

	want := "client,available,held,total,locked\n" +
		"1,0,0,0,true\n" +
		"2,74.5,0,74.5,false\n" +
		"3,0.0001,0,0.0001,false\n"
	assert.Equal(t, want, buf.String())
}

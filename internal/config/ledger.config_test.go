package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEDGER_LOG_ERRORS", "")
	assert.False(t, Load().LogErrors)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LEDGER_LOG_ERRORS", "true")
	assert.True(t, Load().LogErrors)

	t.Setenv("LEDGER_LOG_ERRORS", "not-a-bool")
	assert.False(t, Load().LogErrors)
}

package redis

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewWithoutAddress(t *testing.T) {
	t.Setenv("REDIS_ADDRESS", "")

	client, err := New()
	require.ErrorIs(t, err, ErrNotConfigured)
	require.Nil(t, client)
}

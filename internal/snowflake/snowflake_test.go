package snowflake_test

import (
	"testing"

	"ocreader/internal/snowflake"

	"github.com/stretchr/testify/require"
)

func TestNextID_Increasing(t *testing.T) {
	require.NoError(t, snowflake.Init(3))

	prev := snowflake.NextID()
	for i := 0; i < 100; i++ {
		next := snowflake.NextID()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestInit_RejectsOutOfRangeNode(t *testing.T) {
	require.Error(t, snowflake.Init(4096))
}

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	store := New(5)

	value, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), value)

	require.NoError(t, store.Save(ctx, -10))
	value, err = store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(-10), value)
}

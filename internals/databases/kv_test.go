package databases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV_GetAbsent(t *testing.T) {
	kv := NewMemoryKV()

	_, found, err := kv.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryKV_SetGetDelete(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "k", []byte(`{"a":1}`)))

	raw, found, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"a":1}`, string(raw))

	require.NoError(t, kv.Delete(ctx, "k"))
	_, found, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()

	src := []byte(`"v1"`)
	require.NoError(t, kv.Set(ctx, "k", src))
	src[1] = 'x' // mutation côté appelant

	raw, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"v1"`, string(raw))

	raw[1] = 'x' // mutation du retour
	again, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `"v1"`, string(again))
}

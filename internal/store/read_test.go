package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConversions_Empty(t *testing.T) {
	s := createTestStore(t)

	got, err := s.ReadConversions(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReadConversions_OrderAndLimit(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, n := range []uint64{1, 20, 300, 4000, 50000} {
		_, err := s.WriteConversion(ctx, createTestConversion(t, n))
		require.NoError(t, err)
	}

	all, err := s.ReadConversions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, c := range all {
		assert.Equal(t, int64(i+1), c.Seq)
	}
	assert.Equal(t, "五万", all[4].Kanji)

	last, err := s.ReadConversions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, uint64(4000), last[0].Number)
	assert.Equal(t, uint64(50000), last[1].Number)
}

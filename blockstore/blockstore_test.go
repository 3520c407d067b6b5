package blockstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemBlockStoreBasics(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemBlockStore()

	e, err := s.Get(ctx, "did:plc:abc111")
	assert.NoError(err)
	assert.Nil(e)

	when := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.NoError(s.Put(ctx, Entry{DID: "did:plc:abc111", Score: 0.8, FlaggedAt: when}))
	assert.NoError(s.Put(ctx, Entry{DID: "did:plc:abc222", Score: 0.9, FlaggedAt: when}))

	e, err = s.Get(ctx, "did:plc:abc111")
	assert.NoError(err)
	require.NotNil(t, e)
	assert.Equal(0.8, e.Score)

	// put for an existing DID overwrites
	assert.NoError(s.Put(ctx, Entry{DID: "did:plc:abc111", Score: 0.95, FlaggedAt: when}))
	e, err = s.Get(ctx, "did:plc:abc111")
	assert.NoError(err)
	require.NotNil(t, e)
	assert.Equal(0.95, e.Score)

	n, err := s.Len(ctx)
	assert.NoError(err)
	assert.Equal(2, n)

	l, err := s.List(ctx)
	assert.NoError(err)
	require.Len(t, l, 2)
	assert.Equal("did:plc:abc111", l[0].DID)
	assert.Equal("did:plc:abc222", l[1].DID)

	assert.NoError(s.Remove(ctx, "did:plc:abc111"))
	assert.NoError(s.Remove(ctx, "did:plc:nope"))
	n, err = s.Len(ctx)
	assert.NoError(err)
	assert.Equal(1, n)

	assert.NoError(s.ReplaceAll(ctx, []Entry{
		{DID: "did:plc:xyz999", Score: 0.75, FlaggedAt: when},
	}))
	l, err = s.List(ctx)
	assert.NoError(err)
	require.Len(t, l, 1)
	assert.Equal("did:plc:xyz999", l[0].DID)
}

func TestMemBlockStoreConcurrentWrites(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	s := NewMemBlockStore()
	when := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			did := fmt.Sprintf("did:plc:bot%03d", i)
			_ = s.Put(ctx, Entry{DID: did, Score: 0.9, FlaggedAt: when})
			_, _ = s.Get(ctx, did)
			_, _ = s.List(ctx)
		}(i)
	}
	wg.Wait()

	n, err := s.Len(ctx)
	assert.NoError(err)
	assert.Equal(50, n)
}

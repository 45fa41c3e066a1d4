package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/reshetovitsme/groupwatch/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	ids   []int64
	err   error
	calls int
}

func (f *fakeFetcher) FetchAdmins(_ context.Context, _ int64) ([]int64, error) {
	f.calls++
	return f.ids, f.err
}

func isAdmin(c *Cache, chatID, userID int64) bool {
	list, ok := c.Admins(chatID)
	return ok && lo.Contains(list.UserIDs, userID)
}

func TestCache_Refresh(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{ids: []int64{1, 2, 2}}
	cache := New(fetcher, nil)

	require.NoError(t, cache.Refresh(ctx, -1001, false))
	list, ok := cache.Admins(-1001)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2}, list.UserIDs)
	assert.True(t, isAdmin(cache, -1001, 2))
	assert.False(t, isAdmin(cache, -1001, 3))

	// cached lists are kept unless forced
	fetcher.ids = []int64{3}
	require.NoError(t, cache.Refresh(ctx, -1001, false))
	assert.Equal(t, 1, fetcher.calls)
	assert.False(t, isAdmin(cache, -1001, 3))

	require.NoError(t, cache.Refresh(ctx, -1001, true))
	assert.Equal(t, 2, fetcher.calls)
	assert.True(t, isAdmin(cache, -1001, 3))
}

func TestCache_RefreshFailureKeepsOldList(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{ids: []int64{1}}
	cache := New(fetcher, nil)
	require.NoError(t, cache.Refresh(ctx, -1001, true))

	fetcher.err = fmt.Errorf("forbidden")
	err := cache.Refresh(ctx, -1001, true)
	assert.ErrorIs(t, err, errors.ErrAdminListUnavailable)
	assert.True(t, isAdmin(cache, -1001, 1))
}

func TestCache_Forget(t *testing.T) {
	cache := New(&fakeFetcher{ids: []int64{1}}, nil)
	require.NoError(t, cache.Refresh(context.Background(), -1001, false))

	cache.Forget(-1001)
	_, ok := cache.Admins(-1001)
	assert.False(t, ok)
}

package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/cardsearch/internal/records"
	"github.com/five82/cardsearch/internal/state"
)

type fakeFetcher struct {
	mu    sync.Mutex
	calls int
	recs  []records.Record
	err   error
}

func (f *fakeFetcher) FetchRecords(context.Context) ([]records.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.recs, f.err
}

func TestLoader_LoadsOnce(t *testing.T) {
	fetcher := &fakeFetcher{recs: []records.Record{{ID: "U1"}, {ID: "U2"}}}
	store := &state.Store{}
	var logs bytes.Buffer
	loader := NewLoader(fetcher, store, slog.New(slog.NewTextHandler(&logs, nil)), "http://example.com/users")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loader.Load(context.Background())
		}()
	}
	wg.Wait()

	snap := loader.Load(context.Background())
	assert.Equal(t, 1, fetcher.calls)
	require.Len(t, snap.Records, 2)
	assert.True(t, snap.Loaded)
	assert.NoError(t, snap.LastError)
	assert.Contains(t, logs.String(), `msg="records loaded"`)
	assert.Contains(t, logs.String(), "count=2")
}

func TestLoader_FailureIsLoggedAndLeavesSetEmpty(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("dial tcp: connection refused")}
	store := &state.Store{}
	var logs bytes.Buffer
	loader := NewLoader(fetcher, store, slog.New(slog.NewTextHandler(&logs, nil)), "http://example.com/users")

	snap := loader.Load(context.Background())
	assert.Empty(t, snap.Records)
	assert.True(t, snap.Failed())
	assert.ErrorContains(t, snap.LastError, "connection refused")

	out := logs.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, `msg="record load failed"`)
	assert.Contains(t, out, "source=http://example.com/users")

	// No retry on a second call.
	loader.Load(context.Background())
	assert.Equal(t, 1, fetcher.calls)
}

func TestLoader_NilLoggerDiscards(t *testing.T) {
	loader := NewLoader(&fakeFetcher{err: errors.New("boom")}, &state.Store{}, nil, "")
	snap := loader.Load(context.Background())
	assert.True(t, snap.Failed())
}

package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/five82/cardsearch/internal/records"
	"github.com/five82/cardsearch/internal/state"
)

// Loader performs the single startup fetch of the record collection.
type Loader struct {
	fetcher records.Fetcher
	store   *state.Store
	logger  *slog.Logger
	source  string

	once sync.Once
}

// NewLoader builds a Loader that fills store from fetcher. source is only
// used for log attributes.
func NewLoader(fetcher records.Fetcher, store *state.Store, logger *slog.Logger, source string) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{fetcher: fetcher, store: store, logger: logger, source: source}
}

// Load fetches the records on the first call and returns the store snapshot.
// Later calls do not fetch again. Failures are logged and recorded on the
// store, leaving the record set empty.
func (l *Loader) Load(ctx context.Context) state.Snapshot {
	l.once.Do(func() {
		recs, err := l.fetcher.FetchRecords(ctx)
		if err != nil {
			l.store.Fail(err)
			l.logger.Error("record load failed", "source", l.source, "err", err)
			return
		}
		l.store.Replace(recs)
		l.logger.Info("records loaded", "source", l.source, "count", len(recs))
	})
	return l.store.Snapshot()
}

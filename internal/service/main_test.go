package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/BigChangeApps/labs-sub003/internal/catalog"
	"github.com/BigChangeApps/labs-sub003/internal/db"
	"github.com/BigChangeApps/labs-sub003/internal/fixtures"
	"github.com/BigChangeApps/labs-sub003/internal/testutil"
	"github.com/rs/zerolog"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func setupDB(t *testing.T) (*sql.DB, db.UnitOfWork) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return database, testutil.NewTestUoW(database)
}

func newCatalogService(t *testing.T, uow db.UnitOfWork, observers ...UseCaseObserver) CatalogService {
	t.Helper()
	return NewCatalogService(uow, fixtures.DefaultCatalog, zerolog.Nop(), observers...)
}

func staticSeed(s catalog.Snapshot) SeedFunc {
	return func() (catalog.Snapshot, error) { return s, nil }
}


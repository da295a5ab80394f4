package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	configSQLite "item-details-service/config/sqlite"
	"item-details-service/internal/itemdetail"
	repo "item-details-service/internal/itemdetail/repository"
	"item-details-service/internal/itemdetail/repository/sqlite"
	"item-details-service/internal/itemdetail/usecase"
	"item-details-service/internal/model"
)

// Mock logger for testing
type mockLogger struct {
	mu    sync.Mutex
	warns []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any) {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warns = append(m.warns, template)
}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func (m *mockLogger) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.warns)
}

// recordingHook records every event and optionally fails or panics.
type recordingHook struct {
	name   string
	err    error
	panics bool
	events []itemdetail.Event
}

func (h *recordingHook) Name() string { return h.name }

func (h *recordingHook) Handle(ctx context.Context, evt itemdetail.Event) error {
	h.events = append(h.events, evt)
	if h.panics {
		panic("boom")
	}
	return h.err
}

// fakeCache is an in-memory CacheRepository with the same fill guard as Redis.
type fakeCache struct {
	entries map[int64]itemdetail.ItemDetail
	markers map[int64]repo.InvalidateOptions
	gets    int
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: make(map[int64]itemdetail.ItemDetail),
		markers: make(map[int64]repo.InvalidateOptions),
	}
}

func (c *fakeCache) Get(ctx context.Context, id int64) (itemdetail.ItemDetail, error) {
	c.gets++
	d, ok := c.entries[id]
	if !ok {
		return itemdetail.ItemDetail{}, repo.ErrCacheMiss
	}
	c.hits++
	return d, nil
}

func (c *fakeCache) Set(ctx context.Context, d itemdetail.ItemDetail, ttl time.Duration) error {
	if m, ok := c.markers[d.ID]; ok && (m.Deleted || d.UpdatedAt.Before(m.Version)) {
		return nil
	}
	c.entries[d.ID] = d
	return nil
}

func (c *fakeCache) Invalidate(ctx context.Context, opt repo.InvalidateOptions) error {
	delete(c.entries, opt.ID)
	if m, ok := c.markers[opt.ID]; !ok || (!m.Deleted && (opt.Deleted || m.Version.Before(opt.Version))) {
		c.markers[opt.ID] = opt
	}
	return nil
}

// racingRepo runs afterGet once a row has been read, before it is returned.
type racingRepo struct {
	repo.Repository
	afterGet func()
}

func (r *racingRepo) GetItemDetail(ctx context.Context, opt repo.GetOptions) (itemdetail.ItemDetail, error) {
	d, err := r.Repository.GetItemDetail(ctx, opt)
	if fn := r.afterGet; fn != nil {
		r.afterGet = nil
		fn()
	}
	return d, err
}

type failingLister struct{}

var errCollaborator = errors.New("collaborator unavailable")

func (failingLister) ListAttachments(ctx context.Context, id int64) ([]json.RawMessage, error) {
	return nil, errCollaborator
}

func (failingLister) ListComments(ctx context.Context, id int64) ([]json.RawMessage, error) {
	return []json.RawMessage{json.RawMessage(`{"body":"hi"}`)}, nil
}

type fixture struct {
	uc      itemdetail.UseCase
	repo    repo.Repository
	history repo.HistoryRepository
	l       *mockLogger
}

func newFixture(t *testing.T, opt usecase.Options) fixture {
	t.Helper()
	db, err := configSQLite.Connect(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	l := &mockLogger{}
	r := sqlite.New(db, l)
	h := sqlite.NewHistory(db, l)
	return fixture{uc: usecase.New(r, l, opt), repo: r, history: h, l: l}
}

var (
	admin  = model.Scope{UserID: "root", Role: model.RoleAdmin}
	editor = model.Scope{UserID: "alice", Role: model.RoleEditor}
	viewer = model.Scope{UserID: "bob", Role: model.RoleViewer}
)

func strPtr(s string) *string { return &s }

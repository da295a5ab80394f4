package usecase_test

import (
	"context"

	"item-details-service/internal/item"
	repo "item-details-service/internal/item/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo is an in-process Repository with injectable failures.
type fakeRepo struct {
	items     []item.Item
	nextID    int64
	createErr error
	listErr   error
	deleteErr error
}

func (f *fakeRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	if f.createErr != nil {
		return item.Item{}, f.createErr
	}
	f.nextID++
	it := item.Item{ID: f.nextID, Name: opt.Name, CreatedAt: opt.CreatedAt}
	f.items = append(f.items, it)
	return it, nil
}

func (f *fakeRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]item.Item, 0, len(f.items))
	for i := len(f.items) - 1; i >= 0; i-- {
		out = append(out, f.items[i])
	}
	return out, nil
}

func (f *fakeRepo) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) (bool, error) {
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	for i, it := range f.items {
		if it.ID == opt.ID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func strPtr(s string) *string { return &s }

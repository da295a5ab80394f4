package sqlite_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	configSQLite "item-details-service/config/sqlite"
	"item-details-service/internal/itemdetail"
	repo "item-details-service/internal/itemdetail/repository"
	"item-details-service/internal/itemdetail/repository/sqlite"
	"item-details-service/pkg/log"
)

func newRepos(t *testing.T) (repo.Repository, repo.HistoryRepository) {
	t.Helper()
	db, err := configSQLite.Connect(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlite.New(db, log.NewNop()), sqlite.NewHistory(db, log.NewNop())
}

func strPtr(s string) *string { return &s }

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepos(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 123, time.UTC)
	hours := 2.5
	approval := true

	created, err := r.CreateItemDetail(ctx, repo.CreateOptions{
		Fields: itemdetail.Fields{
			Name:             strPtr("Launch"),
			Category:         strPtr("work"),
			Priority:         strPtr("high"),
			Tags:             json.RawMessage(`["a","b"]`),
			CustomFields:     json.RawMessage(`{"n":1.50,"big":12345678901234567890}`),
			DueDate:          strPtr("2026-03-10"),
			EstimatedHours:   &hours,
			ApprovalRequired: &approval,
		},
		CreatedBy: "alice",
		CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateItemDetail: %v", err)
	}
	if created.ID <= 0 || created.Name != "Launch" || created.CreatedBy != "alice" {
		t.Fatalf("unexpected record: %+v", created)
	}
	if !created.CreatedAt.Equal(now) || !created.UpdatedAt.Equal(now) {
		t.Errorf("timestamps not preserved: %v %v", created.CreatedAt, created.UpdatedAt)
	}
	if created.Status != nil || created.Tags == nil || created.Metadata != nil {
		t.Errorf("unexpected optional fields: status=%v tags=%s metadata=%s", created.Status, created.Tags, created.Metadata)
	}

	got, err := r.GetItemDetail(ctx, repo.GetOptions{ID: created.ID})
	if err != nil {
		t.Fatalf("GetItemDetail: %v", err)
	}
	if string(got.CustomFields) != `{"n":1.50,"big":12345678901234567890}` {
		t.Errorf("structured value changed: %s", got.CustomFields)
	}
	if got.Category == nil || *got.Category != itemdetail.CategoryWork {
		t.Errorf("unexpected category: %v", got.Category)
	}
	if got.EstimatedHours == nil || *got.EstimatedHours != 2.5 || !got.ApprovalRequired {
		t.Errorf("unexpected numeric fields: %+v", got)
	}

	if _, err := r.GetItemDetail(ctx, repo.GetOptions{ID: 424242}); !errors.Is(err, itemdetail.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListItemDetails(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepos(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	parent, _ := r.CreateItemDetail(ctx, repo.CreateOptions{Fields: itemdetail.Fields{Name: strPtr("parent")}, CreatedAt: base})
	pid := parent.ID
	child, _ := r.CreateItemDetail(ctx, repo.CreateOptions{
		Fields:    itemdetail.Fields{Name: strPtr("child"), ParentItemID: &pid},
		CreatedAt: base.Add(time.Minute),
	})

	all, err := r.ListItemDetails(ctx, repo.ListOptions{})
	if err != nil {
		t.Fatalf("ListItemDetails: %v", err)
	}
	if len(all) != 2 || all[0].ID != child.ID || all[1].ID != parent.ID {
		t.Errorf("expected newest first, got %+v", all)
	}

	children, err := r.ListItemDetails(ctx, repo.ListOptions{ParentItemID: &pid})
	if err != nil {
		t.Fatalf("ListItemDetails by parent: %v", err)
	}
	if len(children) != 1 || children[0].ID != child.ID {
		t.Errorf("unexpected children: %+v", children)
	}
}

func TestUpdateItemDetail(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepos(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	created, _ := r.CreateItemDetail(ctx, repo.CreateOptions{
		Fields:    itemdetail.Fields{Name: strPtr("Launch"), Category: strPtr("work"), Assignee: strPtr("bob")},
		CreatedAt: base,
	})

	later := base.Add(time.Hour)
	before, after, err := r.UpdateItemDetail(ctx, repo.UpdateOptions{
		ID:        created.ID,
		Fields:    itemdetail.Fields{Category: strPtr("urgent"), Tags: json.RawMessage(`["x"]`)},
		UpdatedAt: later,
	})
	if err != nil {
		t.Fatalf("UpdateItemDetail: %v", err)
	}
	if *before.Category != itemdetail.CategoryWork || *after.Category != itemdetail.CategoryUrgent {
		t.Errorf("unexpected before/after category: %v %v", *before.Category, *after.Category)
	}
	if after.Name != "Launch" || after.Assignee == nil || *after.Assignee != "bob" {
		t.Errorf("unsupplied fields must be kept: %+v", after)
	}
	if !after.UpdatedAt.Equal(later) || !after.CreatedAt.Equal(base) {
		t.Errorf("unexpected timestamps: created=%v updated=%v", after.CreatedAt, after.UpdatedAt)
	}

	_, _, err = r.UpdateItemDetail(ctx, repo.UpdateOptions{ID: 999, Fields: itemdetail.Fields{Name: strPtr("x")}, UpdatedAt: later})
	if !errors.Is(err, itemdetail.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteItemDetail(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepos(t)

	created, _ := r.CreateItemDetail(ctx, repo.CreateOptions{Fields: itemdetail.Fields{Name: strPtr("gone")}, CreatedAt: time.Now()})

	deleted, err := r.DeleteItemDetail(ctx, repo.DeleteOptions{ID: created.ID})
	if err != nil {
		t.Fatalf("DeleteItemDetail: %v", err)
	}
	if deleted.Name != "gone" {
		t.Errorf("expected deleted row to be returned, got %+v", deleted)
	}

	if _, err := r.DeleteItemDetail(ctx, repo.DeleteOptions{ID: created.ID}); !errors.Is(err, itemdetail.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := r.GetItemDetail(ctx, repo.GetOptions{ID: created.ID}); !errors.Is(err, itemdetail.ErrNotFound) {
		t.Errorf("expected row to be gone, got %v", err)
	}
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	_, h := newRepos(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i, action := range []itemdetail.Action{itemdetail.ActionCreated, itemdetail.ActionUpdated} {
		e, err := h.InsertHistory(ctx, repo.InsertHistoryOptions{
			ItemID:    5,
			Action:    action,
			Actor:     "alice",
			Changes:   []string{"name"},
			CreatedAt: now,
		})
		if err != nil {
			t.Fatalf("InsertHistory: %v", err)
		}
		if e.Version != i+1 {
			t.Errorf("expected version %d, got %d", i+1, e.Version)
		}
	}
	if _, err := h.InsertHistory(ctx, repo.InsertHistoryOptions{ItemID: 6, Action: itemdetail.ActionCreated, CreatedAt: now}); err != nil {
		t.Fatalf("InsertHistory other item: %v", err)
	}

	entries, err := h.ListHistory(ctx, 5)
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	if len(entries) != 2 || entries[0].Action != itemdetail.ActionCreated || entries[1].Version != 2 {
		t.Fatalf("unexpected history: %+v", entries)
	}
	if len(entries[1].Changes) != 1 || entries[1].Changes[0] != "name" {
		t.Errorf("unexpected changes: %v", entries[1].Changes)
	}

	empty, err := h.ListHistory(ctx, 77)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil history, got %v %v", empty, err)
	}
}

package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	configSQLite "item-details-service/config/sqlite"
	"item-details-service/internal/itemdetail"
	"item-details-service/internal/itemdetail/hook"
	"item-details-service/internal/itemdetail/repository/sqlite"
	"item-details-service/internal/itemdetail/usecase"
	"item-details-service/internal/model"
	pkgErrors "item-details-service/pkg/errors"
)

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var v *pkgErrors.ValidationError
	if !errors.As(err, &v) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return v.Fields
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	negative := -1.0
	zero := int64(0)

	tests := []struct {
		name   string
		fields itemdetail.Fields
		field  string
	}{
		{name: "Missing name", fields: itemdetail.Fields{}, field: "name"},
		{name: "Empty name", fields: itemdetail.Fields{Name: strPtr("")}, field: "name"},
		{name: "Whitespace name", fields: itemdetail.Fields{Name: strPtr("  \t ")}, field: "name"},
		{name: "Long name", fields: itemdetail.Fields{Name: strPtr(strings.Repeat("a", 256))}, field: "name"},
		{name: "Bad category", fields: itemdetail.Fields{Name: strPtr("x"), Category: strPtr("not-a-real-category")}, field: "category"},
		{name: "Bad priority", fields: itemdetail.Fields{Name: strPtr("x"), Priority: strPtr("HIGH")}, field: "priority"},
		{name: "Bad status", fields: itemdetail.Fields{Name: strPtr("x"), Status: strPtr("archived")}, field: "status"},
		{name: "Past due date", fields: itemdetail.Fields{Name: strPtr("x"), DueDate: strPtr("2000-01-01")}, field: "due_date"},
		{name: "Yesterday", fields: itemdetail.Fields{Name: strPtr("x"), DueDate: strPtr("yesterday")}, field: "due_date"},
		{name: "Impossible date", fields: itemdetail.Fields{Name: strPtr("x"), DueDate: strPtr("2099-02-30")}, field: "due_date"},
		{name: "Garbage date", fields: itemdetail.Fields{Name: strPtr("x"), DueDate: strPtr("someday")}, field: "due_date"},
		{name: "Negative hours", fields: itemdetail.Fields{Name: strPtr("x"), EstimatedHours: &negative}, field: "estimated_hours"},
		{name: "Negative budget", fields: itemdetail.Fields{Name: strPtr("x"), Budget: &negative}, field: "budget"},
		{name: "Zero template", fields: itemdetail.Fields{Name: strPtr("x"), TemplateID: &zero}, field: "template_id"},
		{name: "Invalid JSON", fields: itemdetail.Fields{Name: strPtr("x"), Tags: json.RawMessage(`[1,`)}, field: "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, usecase.Options{})
			_, err := f.uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: tt.fields})
			if !errors.Is(err, pkgErrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if fieldErrors(t, err)[tt.field] == "" {
				t.Errorf("expected error on %q, got %v", tt.field, err)
			}
			list, _ := f.uc.List(ctx, itemdetail.ListInput{Scope: viewer})
			if len(list.ItemDetails) != 0 {
				t.Errorf("nothing should be persisted, got %d", len(list.ItemDetails))
			}
		})
	}

	t.Run("Reports every invalid field", func(t *testing.T) {
		f := newFixture(t, usecase.Options{})
		_, err := f.uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{
			Category: strPtr("x"), Priority: strPtr("y"),
		}})
		fields := fieldErrors(t, err)
		for _, k := range []string{"name", "category", "priority"} {
			if fields[k] == "" {
				t.Errorf("missing error for %s: %v", k, fields)
			}
		}
	})
}

func TestCreateAndDetail(t *testing.T) {
	ctx := context.Background()
	hook := &recordingHook{name: "recorder"}
	f := newFixture(t, usecase.Options{Hooks: []itemdetail.Hook{hook}})

	out, err := f.uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{
		Name:     strPtr("  Launch  "),
		Category: strPtr("work"),
		Priority: strPtr("high"),
		Tags:     json.RawMessage(`[ "a", "b" ]`),
		DueDate:  strPtr("tomorrow"),
	}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	d := out.ItemDetail
	if d.Name != "Launch" || d.CreatedBy != "alice" || d.Status != nil {
		t.Errorf("unexpected record: %+v", d)
	}
	if string(d.Tags) != `["a","b"]` {
		t.Errorf("expected compact tags, got %s", d.Tags)
	}
	wantDue := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	if d.DueDate == nil || *d.DueDate != wantDue {
		t.Errorf("expected due date %s, got %v", wantDue, d.DueDate)
	}

	if len(hook.events) != 1 || hook.events[0].Action != itemdetail.ActionCreated || hook.events[0].Actor != "alice" {
		t.Fatalf("unexpected hook events: %+v", hook.events)
	}

	got, err := f.uc.Detail(ctx, itemdetail.DetailInput{Scope: viewer, ID: d.ID})
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if got.ItemDetail.Name != d.Name || string(got.ItemDetail.Tags) != `["a","b"]` {
		t.Errorf("detail differs from created record: %+v", got.ItemDetail)
	}
	rel := got.Related
	if rel.Attachments == nil || rel.Comments == nil || rel.Dependencies == nil || rel.History == nil || rel.RelatedItems == nil {
		t.Errorf("envelope collections must default to empty: %+v", rel)
	}

	if _, err := f.uc.Detail(ctx, itemdetail.DetailInput{Scope: viewer, ID: 9999}); !errors.Is(err, itemdetail.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDetailRelated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, usecase.Options{})
	uc := usecase.New(f.repo, f.l, usecase.Options{
		Attachments: failingLister{},
		Comments:    failingLister{},
		History:     f.history,
	})

	parent, _ := uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{Name: strPtr("parent")}})
	pid := parent.ItemDetail.ID
	child, err := uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{Name: strPtr("child"), ParentItemID: &pid}})
	if err != nil {
		t.Fatalf("create child: %v", err)
	}

	out, err := uc.Detail(ctx, itemdetail.DetailInput{Scope: viewer, ID: pid})
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if len(out.Related.RelatedItems) != 1 || out.Related.RelatedItems[0].ID != child.ItemDetail.ID {
		t.Errorf("expected child in related items, got %+v", out.Related.RelatedItems)
	}
	if len(out.Related.Attachments) != 0 {
		t.Errorf("failing collaborator must yield empty attachments")
	}
	if len(out.Related.Comments) != 1 {
		t.Errorf("expected comments from collaborator, got %v", out.Related.Comments)
	}
	if f.l.count() == 0 {
		t.Errorf("collaborator failure must be logged")
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Atomic on validation failure", func(t *testing.T) {
		f := newFixture(t, usecase.Options{})
		created, _ := f.uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{
			Name: strPtr("Original"), Category: strPtr("work"),
		}})
		id := created.ItemDetail.ID

		_, err := f.uc.Update(ctx, itemdetail.UpdateInput{Scope: editor, ID: id, Fields: itemdetail.Fields{
			Name: strPtr("Renamed"), Category: strPtr("not-a-real-category"),
		}})
		if fieldErrors(t, err)["category"] == "" {
			t.Fatalf("expected category error, got %v", err)
		}

		got, _ := f.uc.Detail(ctx, itemdetail.DetailInput{Scope: viewer, ID: id})
		if got.ItemDetail.Name != "Original" || *got.ItemDetail.Category != itemdetail.CategoryWork {
			t.Errorf("record changed after failed update: %+v", got.ItemDetail)
		}
	})

	t.Run("Merges and stamps updated_at", func(t *testing.T) {
		hook := &recordingHook{name: "recorder"}
		f := newFixture(t, usecase.Options{Hooks: []itemdetail.Hook{hook}})
		created, _ := f.uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{
			Name: strPtr("Launch"), Assignee: strPtr("bob"),
		}})
		id := created.ItemDetail.ID

		out, err := f.uc.Update(ctx, itemdetail.UpdateInput{Scope: admin, ID: id, Fields: itemdetail.Fields{
			Status: strPtr("completed"),
		}})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		d := out.ItemDetail
		if *d.Status != itemdetail.StatusCompleted || d.Name != "Launch" || *d.Assignee != "bob" {
			t.Errorf("unexpected merge result: %+v", d)
		}
		if d.UpdatedAt.Before(created.ItemDetail.UpdatedAt) {
			t.Errorf("updated_at must move forward")
		}

		last := hook.events[len(hook.events)-1]
		if last.Action != itemdetail.ActionUpdated || last.Before == nil || last.After == nil {
			t.Fatalf("unexpected update event: %+v", last)
		}
		if len(last.Changes) != 1 || last.Changes[0] != "status" {
			t.Errorf("unexpected changes: %v", last.Changes)
		}
	})

	t.Run("Blank name rejected", func(t *testing.T) {
		f := newFixture(t, usecase.Options{})
		created, _ := f.uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{Name: strPtr("x")}})
		_, err := f.uc.Update(ctx, itemdetail.UpdateInput{Scope: editor, ID: created.ItemDetail.ID, Fields: itemdetail.Fields{Name: strPtr("   ")}})
		if fieldErrors(t, err)["name"] == "" {
			t.Errorf("expected name error, got %v", err)
		}
	})

	t.Run("Self parent rejected", func(t *testing.T) {
		f := newFixture(t, usecase.Options{})
		created, _ := f.uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{Name: strPtr("x")}})
		id := created.ItemDetail.ID
		_, err := f.uc.Update(ctx, itemdetail.UpdateInput{Scope: editor, ID: id, Fields: itemdetail.Fields{ParentItemID: &id}})
		if fieldErrors(t, err)["parent_item_id"] == "" {
			t.Errorf("expected parent_item_id error, got %v", err)
		}
	})

	t.Run("Validation precedes not found", func(t *testing.T) {
		f := newFixture(t, usecase.Options{})
		_, err := f.uc.Update(ctx, itemdetail.UpdateInput{Scope: editor, ID: 404, Fields: itemdetail.Fields{Status: strPtr("nope")}})
		if !errors.Is(err, pkgErrors.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
		_, err = f.uc.Update(ctx, itemdetail.UpdateInput{Scope: editor, ID: 404, Fields: itemdetail.Fields{Status: strPtr("active")}})
		if !errors.Is(err, itemdetail.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestPermissions(t *testing.T) {
	ctx := context.Background()
	hook := &recordingHook{name: "recorder"}
	f := newFixture(t, usecase.Options{Hooks: []itemdetail.Hook{hook}})

	created, err := f.uc.Create(ctx, itemdetail.CreateInput{Scope: admin, Fields: itemdetail.Fields{Name: strPtr("x")}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := created.ItemDetail.ID
	hook.events = nil

	if _, err := f.uc.Create(ctx, itemdetail.CreateInput{Scope: viewer, Fields: itemdetail.Fields{Name: strPtr("y")}}); !errors.Is(err, itemdetail.ErrPermissionDenied) {
		t.Errorf("viewer create: expected ErrPermissionDenied, got %v", err)
	}
	// Permission is checked before validation.
	if _, err := f.uc.Update(ctx, itemdetail.UpdateInput{Scope: viewer, ID: id, Fields: itemdetail.Fields{Status: strPtr("bogus")}}); !errors.Is(err, itemdetail.ErrPermissionDenied) {
		t.Errorf("viewer update: expected ErrPermissionDenied, got %v", err)
	}
	if err := f.uc.Delete(ctx, itemdetail.DeleteInput{Scope: viewer, ID: id}); !errors.Is(err, itemdetail.ErrPermissionDenied) {
		t.Errorf("viewer delete: expected ErrPermissionDenied, got %v", err)
	}
	if _, err := f.uc.List(ctx, itemdetail.ListInput{Scope: model.Scope{}}); !errors.Is(err, itemdetail.ErrPermissionDenied) {
		t.Errorf("empty scope list: expected ErrPermissionDenied, got %v", err)
	}
	if len(hook.events) != 0 {
		t.Errorf("denied requests must not run hooks: %+v", hook.events)
	}

	got, err := f.uc.Detail(ctx, itemdetail.DetailInput{Scope: viewer, ID: id})
	if err != nil || got.ItemDetail.Name != "x" {
		t.Errorf("record must be unchanged and readable: %v %+v", err, got.ItemDetail)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	failing := &recordingHook{name: "notify", err: errors.New("telegram down")}
	panicking := &recordingHook{name: "reminder", panics: true}
	after := &recordingHook{name: "audit"}
	f := newFixture(t, usecase.Options{Hooks: []itemdetail.Hook{failing, panicking, after}})

	created, _ := f.uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{Name: strPtr("x")}})
	id := created.ItemDetail.ID

	if err := f.uc.Delete(ctx, itemdetail.DeleteInput{Scope: editor, ID: id}); err != nil {
		t.Fatalf("hook failures must not fail the delete: %v", err)
	}
	if len(after.events) != 2 || after.events[1].Action != itemdetail.ActionDeleted || after.events[1].Before == nil {
		t.Errorf("later hooks must still run: %+v", after.events)
	}
	if f.l.count() == 0 {
		t.Errorf("hook failures must be logged")
	}

	for i := 0; i < 2; i++ {
		if err := f.uc.Delete(ctx, itemdetail.DeleteInput{Scope: editor, ID: id}); !errors.Is(err, itemdetail.ErrNotFound) {
			t.Errorf("attempt %d: expected ErrNotFound, got %v", i, err)
		}
	}
	if len(after.events) != 2 {
		t.Errorf("failed deletes must not run hooks")
	}
}

func TestDetailCache(t *testing.T) {
	ctx := context.Background()
	cache := newFakeCache()
	f := newFixture(t, usecase.Options{Cache: cache, CacheTTL: time.Minute})

	created, _ := f.uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{Name: strPtr("cached")}})
	id := created.ItemDetail.ID

	if _, err := f.uc.Detail(ctx, itemdetail.DetailInput{Scope: viewer, ID: id}); err != nil {
		t.Fatalf("first Detail: %v", err)
	}
	if _, ok := cache.entries[id]; !ok {
		t.Fatalf("expected record to be cached after a miss")
	}
	if _, err := f.uc.Detail(ctx, itemdetail.DetailInput{Scope: viewer, ID: id}); err != nil {
		t.Fatalf("second Detail: %v", err)
	}
	if cache.hits != 1 {
		t.Errorf("expected one cache hit, got %d", cache.hits)
	}

	gets := cache.gets
	if _, err := f.uc.Detail(ctx, itemdetail.DetailInput{Scope: viewer, ID: id, NoCache: true}); err != nil {
		t.Fatalf("NoCache Detail: %v", err)
	}
	if cache.gets != gets {
		t.Errorf("NoCache must bypass the cache read")
	}
}

func TestDetailCacheSkipsStaleFill(t *testing.T) {
	ctx := context.Background()
	db, err := configSQLite.Connect(ctx, ":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer db.Close()

	l := &mockLogger{}
	cache := newFakeCache()
	racing := &racingRepo{Repository: sqlite.New(db, l)}
	uc := usecase.New(racing, l, usecase.Options{
		Cache:    cache,
		CacheTTL: time.Minute,
		Hooks:    []itemdetail.Hook{hook.NewCacheInvalidation(cache)},
	})

	created, err := uc.Create(ctx, itemdetail.CreateInput{Scope: editor, Fields: itemdetail.Fields{Name: strPtr("v1")}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := created.ItemDetail.ID

	// An update commits between the read and the cache fill.
	racing.afterGet = func() {
		if _, err := uc.Update(ctx, itemdetail.UpdateInput{Scope: editor, ID: id, Fields: itemdetail.Fields{Name: strPtr("v2")}}); err != nil {
			t.Errorf("Update: %v", err)
		}
	}

	first, err := uc.Detail(ctx, itemdetail.DetailInput{Scope: viewer, ID: id})
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if first.ItemDetail.Name != "v1" {
		t.Fatalf("expected the row read before the update, got %q", first.ItemDetail.Name)
	}
	if cached, ok := cache.entries[id]; ok {
		t.Fatalf("stale row %q must not be cached", cached.Name)
	}

	second, err := uc.Detail(ctx, itemdetail.DetailInput{Scope: viewer, ID: id})
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if second.ItemDetail.Name != "v2" {
		t.Errorf("expected v2 after the update, got %q", second.ItemDetail.Name)
	}
	if cache.entries[id].Name != "v2" {
		t.Errorf("expected v2 to be cached, got %+v", cache.entries[id])
	}

	if err := uc.Delete(ctx, itemdetail.DeleteInput{Scope: editor, ID: id}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := cache.Set(ctx, second.ItemDetail, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := cache.entries[id]; ok {
		t.Errorf("a deleted row must not be refilled")
	}
}

package sqlite_test

import (
	"context"
	"testing"
	"time"

	"item-details-service/config/sqlite"
)

func TestConnect(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.Connect(ctx, ":memory:")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"items", "item_details", "item_detail_history"} {
		var name string
		err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	// Migrate is idempotent.
	if err := sqlite.Migrate(ctx, db); err != nil {
		t.Errorf("second migrate failed: %v", err)
	}
}

func TestConnectIsolation(t *testing.T) {
	ctx := context.Background()
	a, err := sqlite.Connect(ctx, ":memory:")
	if err != nil {
		t.Fatalf("connect a: %v", err)
	}
	defer a.Close()
	b, err := sqlite.Connect(ctx, ":memory:")
	if err != nil {
		t.Fatalf("connect b: %v", err)
	}
	defer b.Close()

	if _, err := a.ExecContext(ctx, "INSERT INTO items (name, created_at) VALUES ('x', '2024-01-01T00:00:00.000000000Z')"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	var count int
	if err := b.QueryRowContext(ctx, "SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("expected isolated databases, found %d rows in b", count)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	in := time.Date(2024, 5, 1, 15, 30, 0, 1500, time.FixedZone("X", 3600))
	s := sqlite.FormatTime(in)
	if len(s) != len(sqlite.TimeLayout) {
		t.Errorf("expected fixed width %d, got %d (%s)", len(sqlite.TimeLayout), len(s), s)
	}
	out, err := sqlite.ParseTime(s)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("expected %v, got %v", in, out)
	}
}

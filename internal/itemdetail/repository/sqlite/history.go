package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	configSQLite "item-details-service/config/sqlite"
	"item-details-service/internal/itemdetail"
	repo "item-details-service/internal/itemdetail/repository"
)

// InsertHistory appends an entry with the next version number for the item.
func (r *implRepository) InsertHistory(ctx context.Context, opt repo.InsertHistoryOptions) (itemdetail.HistoryEntry, error) {
	changes := opt.Changes
	if changes == nil {
		changes = []string{}
	}
	changesJSON, err := json.Marshal(changes)
	if err != nil {
		return itemdetail.HistoryEntry{}, repo.ErrFailedToInsertHistory
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("InsertHistory"), err)
		return itemdetail.HistoryEntry{}, repo.ErrFailedToInsertHistory
	}
	defer func() { _ = tx.Rollback() }()

	var version int
	const nextVersion = `SELECT COALESCE(MAX(version), 0) + 1 FROM item_detail_history WHERE item_id = ?`
	if err := tx.QueryRowContext(ctx, nextVersion, opt.ItemID).Scan(&version); err != nil {
		r.l.Errorf(ctx, "%s version: %v", r.dsn("InsertHistory"), err)
		return itemdetail.HistoryEntry{}, repo.ErrFailedToInsertHistory
	}

	const insert = `
		INSERT INTO item_detail_history (item_id, version, action, actor, changes, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, insert, opt.ItemID, version, string(opt.Action), opt.Actor,
		string(changesJSON), configSQLite.FormatTime(opt.CreatedAt))
	if err != nil {
		r.l.Errorf(ctx, "%s insert: %v", r.dsn("InsertHistory"), err)
		return itemdetail.HistoryEntry{}, repo.ErrFailedToInsertHistory
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("InsertHistory"), err)
		return itemdetail.HistoryEntry{}, repo.ErrFailedToInsertHistory
	}

	return itemdetail.HistoryEntry{
		ItemID:    opt.ItemID,
		Version:   version,
		Action:    opt.Action,
		Actor:     opt.Actor,
		Changes:   changes,
		CreatedAt: opt.CreatedAt.UTC(),
	}, nil
}

// ListHistory returns the entries of one item, oldest version first.
func (r *implRepository) ListHistory(ctx context.Context, itemID int64) ([]itemdetail.HistoryEntry, error) {
	const query = `
		SELECT item_id, version, action, actor, changes, created_at
		FROM item_detail_history
		WHERE item_id = ?
		ORDER BY version ASC`

	rows, err := r.db.QueryContext(ctx, query, itemID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListHistory"), err)
		return nil, repo.ErrFailedToListHistory
	}
	defer rows.Close()

	entries := make([]itemdetail.HistoryEntry, 0)
	for rows.Next() {
		var (
			e         itemdetail.HistoryEntry
			action    string
			actor     sql.NullString
			changes   sql.NullString
			createdAt string
		)
		if err := rows.Scan(&e.ItemID, &e.Version, &action, &actor, &changes, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListHistory"), err)
			return nil, repo.ErrFailedToListHistory
		}
		e.Action = itemdetail.Action(action)
		e.Actor = actor.String
		e.Changes = []string{}
		if changes.Valid && changes.String != "" {
			if err := json.Unmarshal([]byte(changes.String), &e.Changes); err != nil {
				r.l.Warnf(ctx, "%s changes: %v", r.dsn("ListHistory"), err)
			}
		}
		if e.CreatedAt, err = configSQLite.ParseTime(createdAt); err != nil {
			r.l.Errorf(ctx, "%s created_at: %v", r.dsn("ListHistory"), err)
			return nil, repo.ErrFailedToListHistory
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListHistory"), err)
		return nil, repo.ErrFailedToListHistory
	}
	return entries, nil
}

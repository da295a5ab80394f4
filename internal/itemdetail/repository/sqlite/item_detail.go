package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	configSQLite "item-details-service/config/sqlite"
	"item-details-service/internal/itemdetail"
	repo "item-details-service/internal/itemdetail/repository"
)

// CreateItemDetail inserts a row from the supplied fields and returns it.
func (r *implRepository) CreateItemDetail(ctx context.Context, opt repo.CreateOptions) (itemdetail.ItemDetail, error) {
	cols, placeholders, args := buildInsert(opt.Fields)
	ts := configSQLite.FormatTime(opt.CreatedAt)
	cols = append(cols, "created_by", "created_at", "updated_at")
	placeholders = append(placeholders, "?", "?", "?")
	args = append(args, opt.CreatedBy, ts, ts)

	query := fmt.Sprintf(`INSERT INTO item_details (%s) VALUES (%s) RETURNING %s`,
		strings.Join(cols, ", "), strings.Join(placeholders, ", "), detailColumns)

	d, err := scanItemDetail(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItemDetail"), err)
		return itemdetail.ItemDetail{}, repo.ErrFailedToInsert
	}
	return d, nil
}

// GetItemDetail fetches one row by id.
func (r *implRepository) GetItemDetail(ctx context.Context, opt repo.GetOptions) (itemdetail.ItemDetail, error) {
	query := fmt.Sprintf(`SELECT %s FROM item_details WHERE id = ?`, detailColumns)

	d, err := scanItemDetail(r.db.QueryRowContext(ctx, query, opt.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return itemdetail.ItemDetail{}, itemdetail.ErrNotFound
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetItemDetail"), err)
		return itemdetail.ItemDetail{}, repo.ErrFailedToGet
	}
	return d, nil
}

// ListItemDetails returns rows newest first, optionally restricted to one parent.
func (r *implRepository) ListItemDetails(ctx context.Context, opt repo.ListOptions) ([]itemdetail.ItemDetail, error) {
	var (
		where string
		args  []any
	)
	if opt.ParentItemID != nil {
		where = "WHERE parent_item_id = ?"
		args = append(args, *opt.ParentItemID)
	}
	query := fmt.Sprintf(`SELECT %s FROM item_details %s ORDER BY created_at DESC, id DESC`, detailColumns, where)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItemDetails"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	details := make([]itemdetail.ItemDetail, 0)
	for rows.Next() {
		d, err := scanItemDetail(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItemDetails"), err)
			return nil, repo.ErrFailedToList
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItemDetails"), err)
		return nil, repo.ErrFailedToList
	}
	return details, nil
}

// UpdateItemDetail reads, merges and writes the row inside one transaction.
func (r *implRepository) UpdateItemDetail(ctx context.Context, opt repo.UpdateOptions) (itemdetail.ItemDetail, itemdetail.ItemDetail, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("UpdateItemDetail"), err)
		return itemdetail.ItemDetail{}, itemdetail.ItemDetail{}, repo.ErrFailedToUpdate
	}
	defer func() { _ = tx.Rollback() }()

	selectQuery := fmt.Sprintf(`SELECT %s FROM item_details WHERE id = ?`, detailColumns)
	before, err := scanItemDetail(tx.QueryRowContext(ctx, selectQuery, opt.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return itemdetail.ItemDetail{}, itemdetail.ItemDetail{}, itemdetail.ErrNotFound
		}
		r.l.Errorf(ctx, "%s select: %v", r.dsn("UpdateItemDetail"), err)
		return itemdetail.ItemDetail{}, itemdetail.ItemDetail{}, repo.ErrFailedToUpdate
	}

	sets, args := buildSet(opt.Fields)
	sets = append(sets, "updated_at = ?")
	args = append(args, configSQLite.FormatTime(opt.UpdatedAt), opt.ID)
	updateQuery := fmt.Sprintf(`UPDATE item_details SET %s WHERE id = ? RETURNING %s`,
		strings.Join(sets, ", "), detailColumns)

	after, err := scanItemDetail(tx.QueryRowContext(ctx, updateQuery, args...))
	if err != nil {
		r.l.Errorf(ctx, "%s update: %v", r.dsn("UpdateItemDetail"), err)
		return itemdetail.ItemDetail{}, itemdetail.ItemDetail{}, repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("UpdateItemDetail"), err)
		return itemdetail.ItemDetail{}, itemdetail.ItemDetail{}, repo.ErrFailedToUpdate
	}
	return before, after, nil
}

// DeleteItemDetail hard-deletes the row and returns its last state.
func (r *implRepository) DeleteItemDetail(ctx context.Context, opt repo.DeleteOptions) (itemdetail.ItemDetail, error) {
	query := fmt.Sprintf(`DELETE FROM item_details WHERE id = ? RETURNING %s`, detailColumns)

	d, err := scanItemDetail(r.db.QueryRowContext(ctx, query, opt.ID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return itemdetail.ItemDetail{}, itemdetail.ErrNotFound
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItemDetail"), err)
		return itemdetail.ItemDetail{}, repo.ErrFailedToDelete
	}
	return d, nil
}

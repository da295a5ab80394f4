package sqlite

import (
	"context"
	"fmt"

	configSQLite "item-details-service/config/sqlite"
	"item-details-service/internal/item"
	repo "item-details-service/internal/item/repository"
)

const itemColumns = `id, name, created_at`

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	const query = `
		INSERT INTO items (name, created_at)
		VALUES (?, ?)
		RETURNING ` + itemColumns

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.Name, configSQLite.FormatTime(opt.CreatedAt)))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}
	return it, nil
}

// ListItems returns every Item, newest first.
func (r *implRepository) ListItems(ctx context.Context, _ repo.ListItemsOptions) ([]item.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items ORDER BY %s`, itemColumns, listOrder)

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}

// DeleteItem removes an Item by ID and reports whether a row existed.
func (r *implRepository) DeleteItem(ctx context.Context, opt repo.DeleteItemOptions) (bool, error) {
	const query = `DELETE FROM items WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteItem"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}

package sqlite

import (
	configSQLite "item-details-service/config/sqlite"
	"item-details-service/internal/item"
)

// listOrder keeps ListItems newest first; id breaks created_at ties.
const listOrder = "created_at DESC, id DESC"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (item.Item, error) {
	var (
		it        item.Item
		createdAt string
	)
	if err := row.Scan(&it.ID, &it.Name, &createdAt); err != nil {
		return item.Item{}, err
	}
	t, err := configSQLite.ParseTime(createdAt)
	if err != nil {
		return item.Item{}, err
	}
	it.CreatedAt = t
	return it, nil
}

package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert item detail")
	ErrFailedToGet    = errors.New("failed to get item detail")
	ErrFailedToList   = errors.New("failed to list item details")
	ErrFailedToUpdate = errors.New("failed to update item detail")
	ErrFailedToDelete = errors.New("failed to delete item detail")

	ErrFailedToInsertHistory = errors.New("failed to insert history entry")
	ErrFailedToListHistory   = errors.New("failed to list history entries")

	ErrCacheMiss = errors.New("cache miss")
)

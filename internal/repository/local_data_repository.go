package repository

import (
	"context"
	"fmt"
)

// LocalDataRepository drops everything synced from a server account.
type LocalDataRepository interface {
	Clear(ctx context.Context) error
}

type localDataRepository struct {
	db dbtx
}

func NewLocalDataRepository(db dbtx) LocalDataRepository {
	return &localDataRepository{db: db}
}

// Clear removes items, feeds, folders and the list selection. Settings
// and the sync history stay.
func (r *localDataRepository) Clear(ctx context.Context) error {
	return withTx(ctx, r.db, func(tx dbtx) error {
		statements := []string{
			`DELETE FROM items`,
			`DELETE FROM feeds`,
			`DELETE FROM folders`,
			`UPDATE temporary_feeds SET tree_item_id = 0, tree_item_kind = '', name = ''`,
		}
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("clear local data: %w", err)
			}
		}
		return nil
	})
}

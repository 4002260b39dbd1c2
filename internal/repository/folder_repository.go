package repository

import (
	"context"
	"fmt"
	"strings"

	"ocreader/internal/model"
)

type FolderRepository interface {
	Upsert(ctx context.Context, folder model.Folder) error
	GetByID(ctx context.Context, id int64) (model.Folder, error)
	List(ctx context.Context) ([]model.Folder, error)
	Delete(ctx context.Context, id int64) error
	DeleteMissing(ctx context.Context, keep []int64) (int64, error)
}

type folderRepository struct {
	db dbtx
}

func NewFolderRepository(db dbtx) FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) Upsert(ctx context.Context, folder model.Folder) error {
	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO folders (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		folder.ID,
		folder.Name,
	)
	if err != nil {
		return fmt.Errorf("upsert folder: %w", err)
	}
	return nil
}

func (r *folderRepository) GetByID(ctx context.Context, id int64) (model.Folder, error) {
	var folder model.Folder
	row := r.db.QueryRowContext(ctx, `SELECT id, name FROM folders WHERE id = ?`, id)
	if err := row.Scan(&folder.ID, &folder.Name); err != nil {
		return model.Folder{}, fmt.Errorf("get folder: %w", err)
	}
	return folder, nil
}

func (r *folderRepository) List(ctx context.Context) ([]model.Folder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM folders ORDER BY name COLLATE NOCASE, id`)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []model.Folder
	for rows.Next() {
		var folder model.Folder
		if err := rows.Scan(&folder.ID, &folder.Name); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate folders: %w", err)
	}

	return folders, nil
}

// Delete removes the folder together with its feeds and their items.
func (r *folderRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx dbtx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM feeds WHERE folder_id = ?`, id); err != nil {
			return fmt.Errorf("delete folder feeds: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM folders WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete folder: %w", err)
		}
		return nil
	})
}

// DeleteMissing removes every folder whose id is not in keep.
func (r *folderRepository) DeleteMissing(ctx context.Context, keep []int64) (int64, error) {
	query := `DELETE FROM folders`
	if len(keep) > 0 {
		query += ` WHERE id NOT IN (` + strings.Repeat("?,", len(keep)-1) + `?)`
	}
	result, err := r.db.ExecContext(ctx, query, int64Args(keep)...)
	if err != nil {
		return 0, fmt.Errorf("delete missing folders: %w", err)
	}
	return result.RowsAffected()
}

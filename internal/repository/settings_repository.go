package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ocreader/internal/model"
)

// SettingsRepository stores key-value settings such as the account
// credentials and the sync cursor.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (*model.Setting, error)
	Set(ctx context.Context, key, value string) error
	GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error)
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

type settingsRepository struct {
	db dbtx
}

func NewSettingsRepository(db dbtx) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns nil when the key is not set.
func (r *settingsRepository) Get(ctx context.Context, key string) (*model.Setting, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM settings WHERE key = ?`, key)

	s, err := scanSetting(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return &s, nil
}

func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, formatTime(time.Now()))
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

func (r *settingsRepository) GetByPrefix(ctx context.Context, prefix string) ([]model.Setting, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM settings WHERE key LIKE ? ORDER BY key`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []model.Setting
	for rows.Next() {
		s, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *settingsRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}

func (r *settingsRepository) DeleteByPrefix(ctx context.Context, prefix string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key LIKE ?`, prefix+"%"); err != nil {
		return fmt.Errorf("delete settings: %w", err)
	}
	return nil
}

func scanSetting(scanner interface {
	Scan(dest ...interface{}) error
}) (model.Setting, error) {
	var s model.Setting
	var updatedAt string
	if err := scanner.Scan(&s.Key, &s.Value, &updatedAt); err != nil {
		return model.Setting{}, err
	}
	t, err := parseTime(updatedAt)
	if err != nil {
		return model.Setting{}, fmt.Errorf("parse setting updated_at: %w", err)
	}
	s.UpdatedAt = t
	return s, nil
}

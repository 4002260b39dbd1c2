package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"ocreader/internal/logger"
	"ocreader/internal/model"
	"ocreader/internal/newsapi"
	"ocreader/internal/repository"
)

type FolderService interface {
	List(ctx context.Context) ([]model.Folder, error)
	Create(ctx context.Context, name string) (model.Folder, error)
	Delete(ctx context.Context, id int64) error
}

type folderService struct {
	api     APIProvider
	folders repository.FolderRepository
}

func NewFolderService(api APIProvider, folders repository.FolderRepository) FolderService {
	return &folderService{api: api, folders: folders}
}

func (s *folderService) List(ctx context.Context) ([]model.Folder, error) {
	return s.folders.List(ctx)
}

// Create creates the folder on the server and stores the server's answer.
func (s *folderService) Create(ctx context.Context, name string) (model.Folder, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return model.Folder{}, ErrInvalid
	}
	client, err := s.api.Client(ctx)
	if err != nil {
		return model.Folder{}, err
	}

	folder, err := client.CreateFolder(ctx, trimmed)
	if err != nil {
		if errors.Is(err, newsapi.ErrConflict) {
			return model.Folder{}, ErrConflict
		}
		if errors.Is(err, newsapi.ErrUnprocessable) {
			return model.Folder{}, ErrInvalid
		}
		return model.Folder{}, fmt.Errorf("create folder: %w", err)
	}
	if err := s.folders.Upsert(ctx, folder); err != nil {
		return model.Folder{}, err
	}
	logger.Info("folder created", "module", "service", "action", "create", "resource", "folder", "result", "ok", "folder_id", folder.ID)
	return folder, nil
}

// Delete removes the folder on the server, then locally together with its
// feeds and their items. A folder already gone on the server is still
// removed locally.
func (s *folderService) Delete(ctx context.Context, id int64) error {
	if _, err := s.folders.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get folder: %w", err)
	}
	client, err := s.api.Client(ctx)
	if err != nil {
		return err
	}
	if err := client.DeleteFolder(ctx, id); err != nil && !errors.Is(err, newsapi.ErrNotFound) {
		return fmt.Errorf("delete folder: %w", err)
	}
	if err := s.folders.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("folder deleted", "module", "service", "action", "delete", "resource", "folder", "result", "ok", "folder_id", id)
	return nil
}

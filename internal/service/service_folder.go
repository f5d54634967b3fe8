package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/validators"
	"github.com/MKhiriev/go-flashcards/models"
)

type folderService struct {
	folderRepository store.FolderRepository
	validator        validators.Validator
	logger           *logger.Logger
}

func NewFolderService(folderRepository store.FolderRepository, logger *logger.Logger) FolderService {
	return &folderService{
		folderRepository: folderRepository,
		validator:        validators.NewRequestValidator(),
		logger:           logger,
	}
}

func (s *folderService) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	return s.folderRepository.ListFolders(ctx, userID)
}

func (s *folderService) GetFolder(ctx context.Context, id, userID int64) (models.Folder, error) {
	return s.folderRepository.GetFolder(ctx, id, userID)
}

// CreateFolder always stamps the folder with userID, whatever the body says.
func (s *folderService) CreateFolder(ctx context.Context, userID int64, req models.FolderCreateRequest) (models.Folder, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Folder{}, err
	}

	folder, err := s.folderRepository.CreateFolder(ctx, models.Folder{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return models.Folder{}, fmt.Errorf("create folder: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("folder_id", folder.ID).Msg("folder created")
	return folder, nil
}

func (s *folderService) UpdateFolder(ctx context.Context, id, userID int64, update models.FolderUpdateRequest) (models.Folder, error) {
	if update.IsEmpty() {
		return models.Folder{}, ErrNothingToUpdate
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Folder{}, err
	}

	return s.folderRepository.UpdateFolder(ctx, id, userID, update)
}

func (s *folderService) DeleteFolder(ctx context.Context, id, userID int64) error {
	return s.folderRepository.DeleteFolder(ctx, id, userID)
}

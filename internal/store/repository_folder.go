package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/models"
	"github.com/jackc/pgerrcode"
)

// folderRepository is the PostgreSQL-backed [FolderRepository]. The owner
// predicate is part of every statement, so ownership checks and writes
// cannot race.
type folderRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	logger.Debug().Msg("creating folder repository")
	return &folderRepository{
		db:     db,
		logger: logger,
	}
}

// ListFolders returns the user's folders, newest first.
func (r *folderRepository) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFolders, userID)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.ListFolders").Int64("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	folders := make([]models.Folder, 0)
	for rows.Next() {
		var f models.Folder
		if err = rows.Scan(&f.ID, &f.UserID, &f.Title, &f.Description, &f.CreatedAt, &f.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*folderRepository.ListFolders").Int64("user_id", userID).Msg("failed to scan folder")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		folders = append(folders, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return folders, nil
}

func (r *folderRepository) GetFolder(ctx context.Context, id, userID int64) (models.Folder, error) {
	folder, err := scanFolder(r.db.QueryRowContext(ctx, getFolder, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*folderRepository.GetFolder").
			Int64("folder_id", id).Int64("user_id", userID).Msg("failed to get folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return folder, nil
}

// CreateFolder inserts folder under folder.UserID.
func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	created, err := scanFolder(r.db.QueryRowContext(ctx, createFolder, folder.UserID, folder.Title, folder.Description))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Folder{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*folderRepository.CreateFolder").
			Int64("user_id", folder.UserID).Msg("failed to insert folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// UpdateFolder changes the present fields of the folder if, and only if, it
// belongs to userID. Otherwise nothing is written and [ErrFolderNotFound]
// is returned.
func (r *folderRepository) UpdateFolder(ctx context.Context, id, userID int64, update models.FolderUpdateRequest) (models.Folder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateFolderQuery(id, userID, update)
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.UpdateFolder").Int64("folder_id", id).Msg("failed to build query")
		return models.Folder{}, err
	}

	folder, err := scanFolder(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrFolderNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*folderRepository.UpdateFolder").Int64("folder_id", id).Msg("failed to update folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return folder, nil
}

// DeleteFolder removes the folder (and, by cascade, its decks and cards)
// when it belongs to userID.
func (r *folderRepository) DeleteFolder(ctx context.Context, id, userID int64) error {
	res, err := r.db.ExecContext(ctx, deleteFolder, id, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*folderRepository.DeleteFolder").
			Int64("folder_id", id).Msg("failed to delete folder")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(res, ErrFolderNotFound)
}

func scanFolder(row *sql.Row) (models.Folder, error) {
	var f models.Folder
	err := row.Scan(&f.ID, &f.UserID, &f.Title, &f.Description, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

// requireAffected turns "no row affected" into notFound.
func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

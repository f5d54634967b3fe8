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

// userRepository is the PostgreSQL-backed [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns it with the generated id and created_at.
// A duplicate email yields [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash)

	created, err := scanUser(row)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindUserByEmail returns the user with the given email, password hash
// included. Unknown emails yield [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

// UpdateUser applies the present fields of update in one statement.
func (r *userRepository) UpdateUser(ctx context.Context, id int64, update models.UserUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", id).Msg("failed to build query")
		return models.User{}, err
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		return models.User{}, ErrEmailAlreadyExists
	case err != nil:
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", id).Msg("error updating user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

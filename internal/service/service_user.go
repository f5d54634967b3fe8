package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/internal/store"
	"github.com/MKhiriev/go-flashcards/internal/validators"
	"github.com/MKhiriev/go-flashcards/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		logger:         logger,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("get profile: %w", err)
	}
	return user, nil
}

// UpdateProfile changes username and/or email. A request without fields
// returns ErrNothingUpdated.
func (s *userService) UpdateProfile(ctx context.Context, userID int64, update models.UserUpdateRequest) (models.User, error) {
	if update.IsEmpty() {
		return models.User{}, ErrNothingUpdated
	}
	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("update profile: %w", err)
	}

	return user, nil
}

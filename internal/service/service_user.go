package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-finance-tracker/internal/crypto"
	"github.com/MKhiriev/go-finance-tracker/internal/logger"
	"github.com/MKhiriev/go-finance-tracker/internal/store"
	"github.com/MKhiriev/go-finance-tracker/models"
)

type userService struct {
	users  store.UserRepository
	hasher crypto.PasswordHasher

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{users: users, hasher: hasher, logger: logger}
}

func (s *userService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	_, lookupErr := s.users.FindUserByEmail(ctx, user.Email)
	exists, err := taken(lookupErr)
	if err != nil {
		return models.User{}, fmt.Errorf("email lookup failed: %w", err)
	}
	if exists {
		return models.User{}, ErrEmailAlreadyUsed
	}

	user.PasswordHash, err = s.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := s.users.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Msg("user creation failed")
		return models.User{}, translate(err, ErrUserNotFound, ErrEmailAlreadyUsed)
	}

	return created.Public(), nil
}

// GetUser only resolves the caller's own id. Any other id looks like a
// missing user.
func (s *userService) GetUser(ctx context.Context, callerID, id int64) (models.User, error) {
	if callerID != id {
		return models.User{}, ErrUserNotFound
	}

	user, err := s.users.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, translate(err, ErrUserNotFound, nil)
	}

	return user.Public(), nil
}

func (s *userService) UpdateUser(ctx context.Context, callerID int64, update models.UserUpdate) (models.User, error) {
	if update.Email != nil {
		owner, err := s.users.FindUserByEmail(ctx, *update.Email)
		exists, err := taken(err)
		if err != nil {
			return models.User{}, fmt.Errorf("email lookup failed: %w", err)
		}
		if exists && owner.UserID != callerID {
			return models.User{}, ErrEmailAlreadyUsed
		}
	}

	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.PasswordHash = &hash
	}

	updated, err := s.users.UpdateUser(ctx, callerID, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", callerID).Msg("user update failed")
		return models.User{}, translate(err, ErrUserNotFound, ErrEmailAlreadyUsed)
	}

	return updated.Public(), nil
}

// DeleteUser removes the caller's account. Owned rows go with it through
// ON DELETE CASCADE.
func (s *userService) DeleteUser(ctx context.Context, callerID, id int64) error {
	if callerID != id {
		return ErrUserNotFound
	}

	if err := s.users.DeleteUser(ctx, id); err != nil {
		return translate(err, ErrUserNotFound, nil)
	}

	logger.FromContext(ctx).Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

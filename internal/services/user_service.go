package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/store"
	"github.com/example/geprek/internal/utils"
)

// UserAdminStore is the persistence behind account management.
type UserAdminStore interface {
	UserExists(ctx context.Context, field, value string) (bool, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// UserService manages existing accounts.
type UserService struct {
	store  UserAdminStore
	logger *zap.Logger
}

// NewUserService creates a UserService.
func NewUserService(store UserAdminStore) *UserService {
	return &UserService{store: store, logger: utils.GetLogger().Named("users")}
}

// UpdateUserInput carries the editable account fields. Nil fields are left alone.
type UpdateUserInput struct {
	Password *string `json:"password"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.store.ListUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, utils.NotFound("User not found")
	}
	return user, err
}

// Update changes the password, address or phone of a user.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, in UpdateUserInput) (*models.User, error) {
	ctx, span := utils.StartSpan(ctx, "UserService.Update")
	defer span.End()

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if in.Password != nil && *in.Password != "" {
		if utf8.RuneCountInString(*in.Password) < minPasswordLength {
			return nil, utils.Validation("Password minimal 6 karakter")
		}
		hash, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["password"] = hash
	}

	if in.Address != nil {
		address := strings.TrimSpace(*in.Address)
		if address == "" {
			updates["address"] = nil
		} else {
			updates["address"] = address
		}
	}

	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if !validPhone(phone) {
			return nil, utils.Validation("No HP minimal 10 digit. Contoh: 08123456789")
		}
		if phone != current.Phone {
			exists, err := s.store.UserExists(ctx, store.UserFieldPhone, phone)
			if err != nil {
				return nil, fmt.Errorf("check phone: %w", err)
			}
			if exists {
				return nil, duplicatePhoneError(phone)
			}
			updates["phone"] = phone
		}
	}

	user, err := s.store.UpdateUser(ctx, id, updates)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil, utils.NotFound("User not found")
	case errors.Is(err, store.ErrDuplicate):
		return nil, duplicatePhoneError(fmt.Sprint(updates["phone"]))
	case err != nil:
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("user updated", zap.String("user_id", id.String()), zap.Int("fields", len(updates)))
	return user, nil
}

// Delete removes a user together with their orders.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.store.DeleteUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound("User not found")
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	return nil
}

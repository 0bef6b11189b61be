package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/geprek/internal/models"
)

// Unique user columns that may be probed with UserExists.
const (
	UserFieldUsername = "username"
	UserFieldEmail    = "email"
	UserFieldPhone    = "phone"
)

// CreateUser inserts a new user.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.db.WithContext(ctx).Create(user).Error)
}

// UserExists reports whether a user with the given unique field value exists.
func (s *Store) UserExists(ctx context.Context, field, value string) (bool, error) {
	switch field {
	case UserFieldUsername, UserFieldEmail, UserFieldPhone:
	default:
		return false, fmt.Errorf("store: %q is not a unique user field", field)
	}

	var count int64
	err := s.db.WithContext(ctx).Model(&models.User{}).
		Where(field+" = ?", value).
		Count(&count).Error
	return count > 0, err
}

// GetUser loads a user by id.
func (s *Store) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GetUserByUsername loads a user by username.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// ListUsers returns every user, newest first.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := s.db.WithContext(ctx).Order("created_at desc").Find(&users).Error
	return users, err
}

// UpdateUser applies column updates to a user and returns the fresh row.
func (s *Store) UpdateUser(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.User, error) {
	if len(updates) > 0 {
		res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetUser(ctx, id)
}

// DeleteUser removes a user; their orders and order items cascade.
func (s *Store) DeleteUser(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

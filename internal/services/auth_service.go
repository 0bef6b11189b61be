package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/geprek/internal/models"
	"github.com/example/geprek/internal/store"
	"github.com/example/geprek/internal/utils"
)

const invalidCredentialsMessage = "Username atau password salah"

// UserStore is the user persistence shared by the auth and user services.
type UserStore interface {
	UserExists(ctx context.Context, field, value string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService registers users and issues access tokens.
type AuthService struct {
	store     UserStore
	jwtSecret string
	tokenTTL  time.Duration
	logger    *zap.Logger
}

// NewAuthService creates an AuthService signing tokens with the given secret.
func NewAuthService(store UserStore, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		store:     store,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    utils.GetLogger().Named("auth"),
	}
}

// AuthResult is a signed-in user with a fresh token.
type AuthResult struct {
	User  *models.User
	Token string
}

// Register validates the sign-up payload and creates the account.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	ctx, span := utils.StartSpan(ctx, "AuthService.Register")
	defer span.End()

	in.normalize()
	if err := in.validateFields(); err != nil {
		return nil, err
	}

	checks := []struct {
		field string
		value string
		fail  func(string) error
	}{
		{store.UserFieldUsername, in.Username, duplicateUsernameError},
		{store.UserFieldEmail, in.Email, duplicateEmailError},
		{store.UserFieldPhone, in.Phone, duplicatePhoneError},
	}
	for _, check := range checks {
		exists, err := s.store.UserExists(ctx, check.field, check.value)
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", check.field, err)
		}
		if exists {
			return nil, check.fail(check.value)
		}
	}

	if err := in.validateAdminCode(); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     in.Username,
		PasswordHash: hash,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         in.Role,
	}
	if in.Address != "" {
		address := in.Address
		user.Address = &address
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, duplicateUserError(err, &in)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	utils.RegistrationsTotal.WithLabelValues(string(user.Role)).Inc()
	s.logger.Info("user registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	return s.issue(user)
}

// Login checks the credentials. Unknown usernames and wrong passwords fail
// with the same message.
func (s *AuthService) Login(ctx context.Context, username, password string) (*AuthResult, error) {
	ctx, span := utils.StartSpan(ctx, "AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, utils.Validation("Username dan password harus diisi")
	}

	user, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		utils.LoginFailuresTotal.Inc()
		return nil, utils.Unauthorized(invalidCredentialsMessage)
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, password) {
		utils.LoginFailuresTotal.Inc()
		s.logger.Info("login rejected", zap.String("user_id", user.ID.String()))
		return nil, utils.Unauthorized(invalidCredentialsMessage)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(s.jwtSecret, user.ID, string(user.Role), s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// duplicateUserError maps a unique-constraint race back to the field message.
func duplicateUserError(err error, in *RegisterInput) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "email"):
		return duplicateEmailError(in.Email)
	case strings.Contains(msg, "phone"):
		return duplicatePhoneError(in.Phone)
	default:
		return duplicateUsernameError(in.Username)
	}
}

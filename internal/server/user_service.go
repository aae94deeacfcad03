package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/axis-portal/internal/config"
	"github.com/jonathan/axis-portal/internal/db"
	"github.com/jonathan/axis-portal/internal/types"
	"github.com/rotisserie/eris"
)

// UserStore is the account persistence the UserService needs.
type UserStore interface {
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, in db.NewUser) (uuid.UUID, error)
	GetUser(ctx context.Context, id uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// UserService provides business logic for user authentication operations
type UserService struct {
	store          UserStore
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(store UserStore, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// Register creates a client account with password authentication.
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	exists, err := s.store.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, eris.Wrap(err, "failed to check email existence")
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, eris.Wrap(err, "failed to hash password")
	}

	// The account, its profile and its role are written in one transaction.
	userID, err := s.store.CreateUser(ctx, db.NewUser{
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		CompanyName:  req.CompanyName,
		Phone:        req.Phone,
		Role:         types.RoleClient,
	})
	if err != nil {
		return nil, eris.Wrap(err, "failed to create user")
	}

	dbUser, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, eris.Wrap(err, "failed to retrieve created user")
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return dbUser.Identity(), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	if err := req.Validate(); err != nil {
		return nil, validationError(err)
	}

	dbUser, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, eris.Wrap(err, "failed to get user by email")
	}

	// Same error for an unknown email and a wrong password.
	if dbUser == nil || dbUser.PasswordHash == "" {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return dbUser.Identity(), nil
}

// UpdatePassword replaces the password of userID after checking the current one.
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, req *types.UpdatePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return validationError(err)
	}

	dbUser, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return eris.Wrap(err, "failed to get user")
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}
	if !s.passwordConfig.VerifyPassword(req.CurrentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	hash, err := s.passwordConfig.HashPassword(req.NewPassword)
	if err != nil {
		return eris.Wrap(err, "failed to hash new password")
	}
	if err := s.store.UpdatePassword(ctx, userID, hash); err != nil {
		return eris.Wrap(err, "failed to update password")
	}
	return nil
}

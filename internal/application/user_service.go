package application

import (
	"context"

	userDomain "github.com/welderdefender/share-it/internal/domain/user"
	"go.uber.org/zap"
)

// CreateUserRequest holds the data needed to register a user.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest holds a partial user update; nil fields are untouched.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserService implements identity-store use cases.
type UserService struct {
	users  userDomain.Repository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users userDomain.Repository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create registers a new user. A duplicate email is a conflict.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserDTO, error) {
	u := userDomain.User{Name: req.Name, Email: req.Email}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	saved, err := s.users.Save(ctx, &u)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.Int64("user_id", saved.ID))
	result := toUserDTO(*saved)
	return &result, nil
}

// Update patches a user's name or email. A changed email must stay unique.
func (s *UserService) Update(ctx context.Context, userID int64, req UpdateUserRequest) (*UserDTO, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.users.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	result := toUserDTO(*saved)
	return &result, nil
}

// GetByID retrieves a user by id.
func (s *UserService) GetByID(ctx context.Context, userID int64) (*UserDTO, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := toUserDTO(*u)
	return &result, nil
}

// GetAll retrieves every user.
func (s *UserService) GetAll(ctx context.Context) ([]UserDTO, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]UserDTO, len(users))
	for i, u := range users {
		dtos[i] = toUserDTO(*u)
	}
	return dtos, nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, userID int64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", userID))
	return nil
}

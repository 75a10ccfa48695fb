package service

import (
	"context"

	"contact_management/internal/logger"
	"contact_management/internal/models"
	"contact_management/internal/repository"
)

// UserService handles registration, login and session management.
type UserService struct {
	users repository.Users
	log   *logger.Logger
}

func NewUserService(users repository.Users, log *logger.Logger) *UserService {
	return &UserService{users: users, log: log}
}

var _ Users = (*UserService)(nil)

// Register creates a new account. The username is the identity key; a
// duplicate yields a conflict before anything is written.
func (s *UserService) Register(ctx context.Context, request models.RegisterUserRequest) (models.UserResponse, error) {
	request, err := validateRegister(request)
	if err != nil {
		return models.UserResponse{}, err
	}

	existing, err := s.users.GetByUsername(ctx, request.Username)
	if err != nil {
		return models.UserResponse{}, err
	}
	if existing != nil {
		return models.UserResponse{}, &ConflictError{Message: "Username Already Exists"}
	}

	hash, err := hashPassword(request.Password)
	if err != nil {
		return models.UserResponse{}, err
	}

	user := models.User{
		Username:     request.Username,
		Name:         request.Name,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return models.UserResponse{}, err
	}

	s.log.Infow("user_registered", "username", user.Username)
	return toUserResponse(user, false), nil
}

// Login verifies credentials and issues a fresh session token. The new
// token overwrites any previous one, silently invalidating that session.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, request models.LoginUserRequest) (models.UserResponse, error) {
	request, err := validateLogin(request)
	if err != nil {
		return models.UserResponse{}, err
	}

	user, err := s.users.GetByUsername(ctx, request.Username)
	if err != nil {
		return models.UserResponse{}, err
	}
	if user == nil || !verifyPassword(user.PasswordHash, request.Password) {
		return models.UserResponse{}, ErrInvalidCredentials
	}

	token := newSessionToken()
	if err := s.users.SetToken(ctx, user.Username, &token); err != nil {
		return models.UserResponse{}, err
	}
	user.Token = &token

	s.log.Infow("user_logged_in", "username", user.Username)
	return toUserResponse(*user, true), nil
}

// ResolveToken maps an inbound session token to its user. A missing or
// unknown token fails with the generic unauthorized error.
func (s *UserService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	user, err := s.users.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// Current returns the public shape of the already-resolved user; no
// persistence access is needed.
func (s *UserService) Current(user models.User) models.UserResponse {
	return toUserResponse(user, false)
}

// Update applies a partial profile update; only the provided fields are
// written, the session token is untouched.
func (s *UserService) Update(ctx context.Context, user models.User, request models.UpdateUserRequest) (models.UserResponse, error) {
	request, err := validateUpdateUser(request)
	if err != nil {
		return models.UserResponse{}, err
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Password != "" {
		hash, err := hashPassword(request.Password)
		if err != nil {
			return models.UserResponse{}, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return models.UserResponse{}, err
	}

	s.log.Infow("user_updated", "username", user.Username)
	return toUserResponse(user, false), nil
}

// Logout clears the stored token; the old token fails resolution from
// then on.
func (s *UserService) Logout(ctx context.Context, user models.User) error {
	if err := s.users.SetToken(ctx, user.Username, nil); err != nil {
		return err
	}
	s.log.Infow("user_logged_out", "username", user.Username)
	return nil
}

// toUserResponse strips sensitive fields; the raw token is exposed only
// on login.
func toUserResponse(user models.User, withToken bool) models.UserResponse {
	resp := models.UserResponse{
		Username: user.Username,
		Name:     user.Name,
	}
	if withToken && user.Token != nil {
		resp.Token = *user.Token
	}
	return resp
}

package services

import (
	"context"
	"errors"
	"strings"

	"meal-planner-api/models"
	"meal-planner-api/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
}

type AuthService struct {
	users   UserStore
	isAdmin func(email string) bool
}

// NewAuthService builds the account service. isAdmin decides which emails
// register with the admin role; nil means none.
func NewAuthService(users UserStore, isAdmin func(email string) bool) *AuthService {
	return &AuthService{users: users, isAdmin: isAdmin}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleMember,
	}
	if s.isAdmin != nil && s.isAdmin(email) {
		user.Role = models.RoleAdmin
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	if userID == 0 {
		return nil, ErrNotAuthenticated
	}
	return s.users.FindByID(ctx, userID)
}

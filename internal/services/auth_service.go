package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"wayfarer/internal/appstate"
	"wayfarer/internal/models/domain"
	"wayfarer/internal/repositories"
	"wayfarer/pkg/utils"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Logout(ctx context.Context, userID string) error
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type AuthService struct {
	userRepo repositories.UserRepository
	sessions *appstate.SessionStore
}

func NewAuthService(userRepo repositories.UserRepository, sessions *appstate.SessionStore) AuthServiceInterface {
	return &AuthService{userRepo: userRepo, sessions: sessions}
}

func validateCredentials(email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("%w: email and password are required", utils.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: please enter a valid email address", utils.ErrValidation)
	}
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", utils.ErrValidation)
	}
	return nil
}

func (a *AuthService) Register(ctx context.Context, email, password, name string) (*domain.User, string, error) {
	if email == "" || password == "" || name == "" {
		return nil, "", fmt.Errorf("%w: all fields are required", utils.ErrValidation)
	}
	if err := validateCredentials(email, password); err != nil {
		return nil, "", err
	}
	if len(strings.TrimSpace(name)) < 2 {
		return nil, "", fmt.Errorf("%w: name must be at least 2 characters", utils.ErrValidation)
	}

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("Error looking up user: %v", err)
		return nil, "", utils.ErrStorageError
	}
	if existing != nil {
		return nil, "", utils.ErrEmailAlreadyExists
	}

	now := time.Now()
	user := domain.User{
		ID:          uuid.New().String(),
		Email:       strings.ToLower(email),
		Name:        strings.TrimSpace(name),
		CreatedAt:   now,
		LastLoginAt: now,
	}

	stored := domain.StoredUser{
		User:           user,
		PasswordMarker: utils.EncodePassword(password),
	}
	if err := a.userRepo.Save(ctx, stored); err != nil {
		log.Printf("Error storing user: %v", err)
		return nil, "", utils.ErrStorageError
	}
	if err := a.userRepo.SetCurrentUser(ctx, user); err != nil {
		log.Printf("Error setting session pointer: %v", err)
		return nil, "", utils.ErrStorageError
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return nil, "", utils.ErrStorageError
	}
	return &user, token, nil
}

func (a *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, "", err
	}

	stored, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		log.Printf("Error looking up user: %v", err)
		return nil, "", utils.ErrStorageError
	}
	if stored == nil {
		return nil, "", utils.ErrAccountNotFound
	}

	if !utils.VerifyPassword(password, stored.PasswordMarker) {
		return nil, "", utils.ErrInvalidCredentials
	}

	stored.LastLoginAt = time.Now()
	if err := a.userRepo.Save(ctx, *stored); err != nil {
		log.Printf("Error updating last login: %v", err)
		return nil, "", utils.ErrStorageError
	}
	if err := a.userRepo.SetCurrentUser(ctx, stored.User); err != nil {
		log.Printf("Error setting session pointer: %v", err)
		return nil, "", utils.ErrStorageError
	}

	token, err := utils.CreateToken(stored.ID)
	if err != nil {
		return nil, "", utils.ErrInvalidCredentials
	}
	return &stored.User, token, nil
}

// Logout clears the session pointer only; user records remain. The in-memory
// app state for the user is dropped so the next login starts clean.
func (a *AuthService) Logout(ctx context.Context, userID string) error {
	a.sessions.Clear(userID)
	return a.userRepo.ClearCurrentUser(ctx)
}

func (a *AuthService) CurrentUser(ctx context.Context) (*domain.User, error) {
	return a.userRepo.CurrentUser(ctx)
}

package repositories

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"wayfarer/internal/models/domain"
	"wayfarer/internal/store"
)

// UserRepository keeps the whole user directory as a single JSON object
// under travel_app_users, keyed by user id, plus a session pointer under
// travel_app_current_user.
type UserRepository interface {
	All(ctx context.Context) (map[string]domain.StoredUser, error)
	FindByEmail(ctx context.Context, email string) (*domain.StoredUser, error)
	Save(ctx context.Context, user domain.StoredUser) error
	CurrentUser(ctx context.Context) (*domain.User, error)
	SetCurrentUser(ctx context.Context, user domain.User) error
	ClearCurrentUser(ctx context.Context) error
}

type userRepository struct {
	kv store.KV
}

func NewUserRepository(kv store.KV) UserRepository {
	return &userRepository{kv: kv}
}

func (r *userRepository) All(ctx context.Context) (map[string]domain.StoredUser, error) {
	raw, ok, err := r.kv.Get(ctx, store.UsersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return map[string]domain.StoredUser{}, nil
	}

	users := make(map[string]domain.StoredUser)
	if err := json.Unmarshal(raw, &users); err != nil {
		// A corrupt directory reads as empty rather than failing login for
		// everyone.
		log.Printf("corrupt user directory, treating as empty: %v", err)
		return map[string]domain.StoredUser{}, nil
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.StoredUser, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Save(ctx context.Context, user domain.StoredUser) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	users[user.ID] = user

	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, store.UsersKey, raw)
}

func (r *userRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	raw, ok, err := r.kv.Get(ctx, store.CurrentUserKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		log.Printf("corrupt session pointer, treating as logged out: %v", err)
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) SetCurrentUser(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, store.CurrentUserKey, raw)
}

func (r *userRepository) ClearCurrentUser(ctx context.Context) error {
	return r.kv.Delete(ctx, store.CurrentUserKey)
}

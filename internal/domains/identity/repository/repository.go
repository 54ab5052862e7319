package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"tatkal/infras/otel"
	"tatkal/internal/domains/identity/model"
	"tatkal/shared/collection"
	"tatkal/shared/constant"
	"tatkal/shared/kvstore"
)

type Identity interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id string) (model.User, bool, error)
	FindByEmail(ctx context.Context, email string) (model.User, bool, error)
	Insert(ctx context.Context, user model.User) error
	Update(ctx context.Context, id string, apply func(*model.User)) (int, error)
	Remove(ctx context.Context, id string) (int, error)

	SaveSession(ctx context.Context, user model.User) error
	GetSession(ctx context.Context) (model.User, bool, error)
	ClearSession(ctx context.Context) error

	PurgeTenantKeys(ctx context.Context, userID string) error
}

type repositoryImpl struct {
	users collection.Collection[model.User]
	store kvstore.Store
	otel  otel.Otel
}

func New(store kvstore.Store, ot otel.Otel) Identity {
	return &repositoryImpl{
		users: collection.New[model.User](model.EntityName, constant.StoreKeyUsers, store, ot),
		store: store,
		otel:  ot,
	}
}

func (r *repositoryImpl) List(ctx context.Context) ([]model.User, error) {
	return r.users.List(ctx)
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (model.User, bool, error) {
	return r.users.Find(ctx, func(u model.User) bool { return u.ID == id })
}

func (r *repositoryImpl) FindByEmail(ctx context.Context, email string) (model.User, bool, error) {
	return r.users.Find(ctx, func(u model.User) bool { return model.SameEmail(u.Email, email) })
}

func (r *repositoryImpl) Insert(ctx context.Context, user model.User) error {
	return r.users.Insert(ctx, user)
}

func (r *repositoryImpl) Update(ctx context.Context, id string, apply func(*model.User)) (int, error) {
	return r.users.Update(ctx, func(u model.User) bool { return u.ID == id }, apply)
}

func (r *repositoryImpl) Remove(ctx context.Context, id string) (int, error) {
	return r.users.Remove(ctx, func(u model.User) bool { return u.ID == id })
}

// SaveSession stores the signed-in user snapshot under the session key.
func (r *repositoryImpl) SaveSession(ctx context.Context, user model.User) error {
	if err := r.store.Put(ctx, constant.StoreKeySession, user); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *repositoryImpl) GetSession(ctx context.Context) (model.User, bool, error) {
	var user model.User

	err := r.store.Get(ctx, constant.StoreKeySession, &user)
	if errors.Is(err, kvstore.ErrNotFound) {
		return model.User{}, false, nil
	}

	if err != nil {
		return model.User{}, false, fmt.Errorf("failed to get session: %w", err)
	}

	return user, true, nil
}

func (r *repositoryImpl) ClearSession(ctx context.Context) error {
	if err := r.store.Remove(ctx, constant.StoreKeySession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// PurgeTenantKeys drops every per-tenant key owned by a deleted user. The
// drops are independent writes with no transaction around them: each one is
// attempted even when an earlier one fails, and the first error is returned
// after the sweep completes.
func (r *repositoryImpl) PurgeTenantKeys(ctx context.Context, userID string) error {
	keys := []string{
		fmt.Sprintf(constant.StoreKeyBookings, userID),
		fmt.Sprintf(constant.StoreKeyPaymentMethods, userID),
		fmt.Sprintf(constant.StoreKeyPassengers, userID),
	}

	var firstErr error

	for _, key := range keys {
		if err := r.store.Remove(ctx, key); err != nil {
			log.Error().Err(err).Str("key", key).Str("user_id", userID).Msg("failed to purge tenant key")

			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

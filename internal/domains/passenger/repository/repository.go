package repository

import (
	"context"
	"fmt"

	"tatkal/infras/otel"
	"tatkal/internal/domains/passenger/model"
	"tatkal/shared/collection"
	"tatkal/shared/constant"
	"tatkal/shared/kvstore"
)

// Passenger persists saved passengers per tenant: every user id maps to its
// own store key, so no operation can see another user's passengers.
type Passenger interface {
	List(ctx context.Context, userID string) ([]model.Passenger, error)
	Insert(ctx context.Context, userID string, p model.Passenger) error
	Update(ctx context.Context, userID, id string, apply func(*model.Passenger)) (int, error)
	Remove(ctx context.Context, userID, id string) (int, error)
}

type repositoryImpl struct {
	store kvstore.Store
	otel  otel.Otel
}

func New(store kvstore.Store, ot otel.Otel) Passenger {
	return &repositoryImpl{
		store: store,
		otel:  ot,
	}
}

func (r *repositoryImpl) tenant(userID string) collection.Collection[model.Passenger] {
	key := fmt.Sprintf(constant.StoreKeyPassengers, userID)

	return collection.New[model.Passenger](model.EntityName, key, r.store, r.otel)
}

func (r *repositoryImpl) List(ctx context.Context, userID string) ([]model.Passenger, error) {
	c := r.tenant(userID)

	return c.List(ctx)
}

func (r *repositoryImpl) Insert(ctx context.Context, userID string, p model.Passenger) error {
	c := r.tenant(userID)

	return c.Insert(ctx, p)
}

func (r *repositoryImpl) Update(ctx context.Context, userID, id string, apply func(*model.Passenger)) (int, error) {
	c := r.tenant(userID)

	return c.Update(ctx, func(p model.Passenger) bool { return p.ID == id }, apply)
}

func (r *repositoryImpl) Remove(ctx context.Context, userID, id string) (int, error) {
	c := r.tenant(userID)

	return c.Remove(ctx, func(p model.Passenger) bool { return p.ID == id })
}

package repository

import (
	"context"
	"fmt"

	"tatkal/infras/otel"
	"tatkal/internal/domains/payment/model"
	"tatkal/shared/collection"
	"tatkal/shared/constant"
	"tatkal/shared/kvstore"
)

// Payment persists payment methods per tenant, one store key per user id.
type Payment interface {
	List(ctx context.Context, userID string) ([]model.PaymentMethod, error)
	Insert(ctx context.Context, userID string, m model.PaymentMethod) error
	Remove(ctx context.Context, userID, id string) (int, error)
}

type repositoryImpl struct {
	store kvstore.Store
	otel  otel.Otel
}

func New(store kvstore.Store, ot otel.Otel) Payment {
	return &repositoryImpl{
		store: store,
		otel:  ot,
	}
}

func (r *repositoryImpl) tenant(userID string) collection.Collection[model.PaymentMethod] {
	key := fmt.Sprintf(constant.StoreKeyPaymentMethods, userID)

	return collection.New[model.PaymentMethod](model.EntityName, key, r.store, r.otel)
}

func (r *repositoryImpl) List(ctx context.Context, userID string) ([]model.PaymentMethod, error) {
	c := r.tenant(userID)

	return c.List(ctx)
}

func (r *repositoryImpl) Insert(ctx context.Context, userID string, m model.PaymentMethod) error {
	c := r.tenant(userID)

	return c.Insert(ctx, m)
}

func (r *repositoryImpl) Remove(ctx context.Context, userID, id string) (int, error) {
	c := r.tenant(userID)

	return c.Remove(ctx, func(m model.PaymentMethod) bool { return m.ID == id })
}

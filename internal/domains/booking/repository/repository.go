package repository

import (
	"context"
	"fmt"

	"tatkal/infras/otel"
	"tatkal/internal/domains/booking/model"
	"tatkal/shared/collection"
	"tatkal/shared/constant"
	"tatkal/shared/kvstore"
)

// Booking persists each user's ledger under its own store key. Entries are
// appended and status-updated, never deleted.
type Booking interface {
	List(ctx context.Context, userID string) ([]model.Booking, error)
	Insert(ctx context.Context, userID string, b model.Booking) error
	FindByPNR(ctx context.Context, userID, pnr string) (model.Booking, bool, error)
	UpdateStatus(ctx context.Context, userID, id, status string) (int, error)
}

type repositoryImpl struct {
	store kvstore.Store
	otel  otel.Otel
}

func New(store kvstore.Store, ot otel.Otel) Booking {
	return &repositoryImpl{
		store: store,
		otel:  ot,
	}
}

func (r *repositoryImpl) tenant(userID string) collection.Collection[model.Booking] {
	key := fmt.Sprintf(constant.StoreKeyBookings, userID)

	return collection.New[model.Booking](model.EntityName, key, r.store, r.otel)
}

func (r *repositoryImpl) List(ctx context.Context, userID string) ([]model.Booking, error) {
	c := r.tenant(userID)

	return c.List(ctx)
}

func (r *repositoryImpl) Insert(ctx context.Context, userID string, b model.Booking) error {
	c := r.tenant(userID)

	return c.Insert(ctx, b)
}

func (r *repositoryImpl) FindByPNR(ctx context.Context, userID, pnr string) (model.Booking, bool, error) {
	c := r.tenant(userID)

	return c.Find(ctx, func(b model.Booking) bool { return b.PNR == pnr })
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, userID, id, status string) (int, error) {
	c := r.tenant(userID)

	return c.Update(ctx,
		func(b model.Booking) bool { return b.ID == id },
		func(b *model.Booking) { b.Status = status },
	)
}

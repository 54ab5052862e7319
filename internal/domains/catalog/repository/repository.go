package repository

import (
	"context"
	"errors"

	"tatkal/infras/otel"
	"tatkal/internal/domains/catalog/model"
	"tatkal/shared/collection"
	"tatkal/shared/constant"
	"tatkal/shared/kvstore"
)

type Catalog interface {
	List(ctx context.Context) ([]model.Train, error)
	FindByID(ctx context.Context, id string) (model.Train, bool, error)
	Insert(ctx context.Context, train model.Train) error
	Replace(ctx context.Context, trains []model.Train) error
	Remove(ctx context.Context, id string) (int, error)
	Seeded(ctx context.Context) (bool, error)
}

type repositoryImpl struct {
	trains collection.Collection[model.Train]
	store  kvstore.Store
}

func New(store kvstore.Store, ot otel.Otel) Catalog {
	return &repositoryImpl{
		trains: collection.New[model.Train](model.EntityName, constant.StoreKeyTrains, store, ot),
		store:  store,
	}
}

func (r *repositoryImpl) List(ctx context.Context) ([]model.Train, error) {
	return r.trains.List(ctx)
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (model.Train, bool, error) {
	return r.trains.Find(ctx, func(t model.Train) bool { return t.ID == id })
}

func (r *repositoryImpl) Insert(ctx context.Context, train model.Train) error {
	return r.trains.Insert(ctx, train)
}

func (r *repositoryImpl) Replace(ctx context.Context, trains []model.Train) error {
	return r.trains.Replace(ctx, trains)
}

func (r *repositoryImpl) Remove(ctx context.Context, id string) (int, error) {
	return r.trains.Remove(ctx, func(t model.Train) bool { return t.ID == id })
}

// Seeded reports whether the trains key exists at all. An empty-but-present
// catalog counts as seeded; seeding only fills a key that was never written.
func (r *repositoryImpl) Seeded(ctx context.Context) (bool, error) {
	var raw []model.Train

	err := r.store.Get(ctx, constant.StoreKeyTrains, &raw)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

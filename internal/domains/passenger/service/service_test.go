package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatkal/infras/otel/mocks"
	"tatkal/internal/domains/passenger/model/dto"
	"tatkal/internal/domains/passenger/repository"
	"tatkal/internal/domains/passenger/service"
	"tatkal/shared/kvstore"
)

func newService(t *testing.T) service.Passenger {
	t.Helper()

	ot := mocks.NewOtel()

	return service.New(repository.New(kvstore.NewMemory(ot), ot), ot)
}

func TestPassengerService_Create(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, dto.CreatePassengerRequest{
		Name:   "Anjali Verma",
		Age:    32,
		Gender: "female",
		Berth:  "lower",
	}, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "lower", res.Berth)

	all, err := svc.GetAll(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 1, all.TotalData)
}

func TestPassengerService_Create_DefaultsBerth(t *testing.T) {
	svc := newService(t)

	res, err := svc.Create(context.Background(), dto.CreatePassengerRequest{
		Name:   "Anjali Verma",
		Age:    32,
		Gender: "female",
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "no-preference", res.Berth)
}

func TestPassengerService_TenantsAreIsolated(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreatePassengerRequest{
		Name:   "Anjali Verma",
		Age:    32,
		Gender: "female",
	}, "user-1")
	require.NoError(t, err)

	other, err := svc.GetAll(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, 0, other.TotalData)
}

func TestPassengerService_Update(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreatePassengerRequest{
		Name:   "Anjali Verma",
		Age:    32,
		Gender: "female",
	}, "user-1")
	require.NoError(t, err)

	err = svc.Update(ctx, dto.UpdatePassengerRequest{
		Name:   "Anjali V",
		Age:    33,
		Gender: "female",
		Berth:  "upper",
	}, "user-1", created.ID)
	require.NoError(t, err)

	all, err := svc.GetAll(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, all.TotalData)
	assert.Equal(t, "Anjali V", all.Passengers[0].Name)
	assert.Equal(t, 33, all.Passengers[0].Age)
	assert.Equal(t, "upper", all.Passengers[0].Berth)
}

func TestPassengerService_Update_NotFound(t *testing.T) {
	svc := newService(t)

	err := svc.Update(context.Background(), dto.UpdatePassengerRequest{
		Name:   "Ghost",
		Age:    30,
		Gender: "other",
	}, "user-1", "missing-id")

	assert.Error(t, err)
}

func TestPassengerService_Delete(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.CreatePassengerRequest{
		Name:   "Anjali Verma",
		Age:    32,
		Gender: "female",
	}, "user-1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "user-1", created.ID))

	all, err := svc.GetAll(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 0, all.TotalData)

	assert.Error(t, svc.Delete(ctx, "user-1", created.ID))
}

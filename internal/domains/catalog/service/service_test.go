package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatkal/infras/otel/mocks"
	"tatkal/internal/domains/catalog/model"
	"tatkal/internal/domains/catalog/model/dto"
	"tatkal/internal/domains/catalog/repository"
	"tatkal/internal/domains/catalog/service"
	"tatkal/shared/kvstore"
)

func newService(t *testing.T) (service.Catalog, repository.Catalog) {
	t.Helper()

	ot := mocks.NewOtel()
	repo := repository.New(kvstore.NewMemory(ot), ot)

	return service.New(repo, ot), repo
}

func TestParseClasses(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "comma separated",
			input:    "1A,2A,3A",
			expected: []string{"1A", "2A", "3A"},
		},
		{
			name:     "spaces and empties trimmed",
			input:    " 1A , , 2A ,",
			expected: []string{"1A", "2A"},
		},
		{
			name:     "only separators",
			input:    ", ,",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.ParseClasses(tt.input))
		})
	}
}

func TestCatalogService_SeedDefaults(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, all.TotalData)
	assert.Equal(t, "12301", all.Trains[0].TrainNo)

	// Seeding again must not duplicate.
	require.NoError(t, svc.SeedDefaults(ctx))

	all, err = svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, all.TotalData)
}

func TestCatalogService_SeedDefaults_RespectsEmptiedCatalog(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))

	// An admin deliberately emptying the catalog must not trigger reseeding.
	require.NoError(t, repo.Replace(ctx, []model.Train{}))
	require.NoError(t, svc.SeedDefaults(ctx))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, all.TotalData)
}

func TestCatalogService_Search(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))

	tests := []struct {
		name        string
		source      string
		destination string
		expected    int
	}{
		{name: "exact case", source: "Delhi", destination: "Mumbai", expected: 2},
		{name: "case-insensitive", source: "delhi", destination: "MUMBAI", expected: 2},
		{name: "reverse direction does not match", source: "Mumbai", destination: "Delhi", expected: 0},
		{name: "no substring matching", source: "Del", destination: "Mumbai", expected: 0},
		{name: "unknown route", source: "Pune", destination: "Goa", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Search(ctx, tt.source, tt.destination)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.TotalData)
		})
	}
}

func TestCatalogService_Create(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, dto.CreateTrainRequest{
		TrainNo:       "12002",
		Name:          "Shatabdi Express",
		Source:        "Delhi",
		Destination:   "Bhopal",
		DepartureTime: "06:00",
		ArrivalTime:   "14:30",
		Duration:      "8h 30m",
		Classes:       "CC, 2S",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "12002", res.TrainNo)
	assert.Equal(t, []string{"CC", "2S"}, res.Classes)

	got, err := svc.Get(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shatabdi Express", got.Name)
	assert.Equal(t, "12002", got.TrainNo)
}

func TestCatalogService_Create_RejectsEmptyClasses(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), dto.CreateTrainRequest{
		TrainNo:       "00000",
		Name:          "Ghost Train",
		Source:        "A",
		Destination:   "B",
		DepartureTime: "00:00",
		ArrivalTime:   "01:00",
		Duration:      "1h",
		Classes:       " , ",
	})

	assert.Error(t, err)
}

func TestCatalogService_Delete(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))

	require.NoError(t, svc.Delete(ctx, "12301"))

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, all.TotalData)

	assert.Error(t, svc.Delete(ctx, "12301"))
	assert.Error(t, svc.Delete(ctx, "missing-id"))
}

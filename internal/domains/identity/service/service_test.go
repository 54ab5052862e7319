package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatkal/config"
	"tatkal/infras/jwt"
	"tatkal/infras/otel/mocks"
	"tatkal/internal/domains/identity/model/dto"
	"tatkal/internal/domains/identity/repository"
	"tatkal/internal/domains/identity/service"
	"tatkal/shared/constant"
	"tatkal/shared/failure"
	"tatkal/shared/kvstore"
)

func newService(t *testing.T) (service.Identity, repository.Identity, kvstore.Store) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.Name = "tatkal-test"
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 60
	cfg.JWT.RefreshExpireMin = 120

	ot := mocks.NewOtel()
	store := kvstore.NewMemory(ot)
	repo := repository.New(store, ot)
	svc := service.New(repo, cfg, ot, jwt.New(cfg))

	return svc, repo, store
}

func signup(t *testing.T, svc service.Identity, name, email, password string) {
	t.Helper()

	err := svc.Signup(context.Background(), dto.SignupRequest{
		Name:            name,
		Email:           email,
		Password:        password,
		ConfirmPassword: password,
	})
	require.NoError(t, err)
}

func TestIdentityService_EnsureAdministrator(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdministrator(ctx))

	admin, found, err := repo.FindByEmail(ctx, constant.AdminEmail)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, constant.AdminID, admin.ID)
	assert.Equal(t, constant.AdminName, admin.Name)
	assert.Equal(t, constant.AdminPassword, admin.Password)
	assert.Equal(t, constant.RoleAdmin, admin.Role)

	// Running again must not duplicate the record.
	require.NoError(t, svc.EnsureAdministrator(ctx))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestIdentityService_EnsureAdministrator_ResetsTamperedRecord(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdministrator(ctx))

	admin, _, err := repo.FindByEmail(ctx, constant.AdminEmail)
	require.NoError(t, err)
	createdAt := admin.CreatedAt

	tamper := dto.UpdateProfileRequest{Name: "Mallory", Email: constant.AdminEmail}
	require.NoError(t, svc.UpdateProfile(ctx, tamper, constant.AdminID))

	require.NoError(t, svc.EnsureAdministrator(ctx))

	admin, found, err := repo.FindByEmail(ctx, constant.AdminEmail)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, constant.AdminName, admin.Name)
	assert.Equal(t, constant.AdminID, admin.ID)
	assert.Equal(t, createdAt.Unix(), admin.CreatedAt.Unix())
}

func TestIdentityService_Signup(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	signup(t, svc, "Rahul Sharma", "rahul@example.com", "secret12")

	user, found, err := repo.FindByEmail(ctx, "rahul@example.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, constant.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestIdentityService_Signup_DuplicateEmail(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	signup(t, svc, "Rahul Sharma", "rahul@example.com", "secret12")

	tests := []struct {
		name  string
		email string
	}{
		{name: "exact duplicate", email: "rahul@example.com"},
		{name: "case-insensitive duplicate", email: "RAHUL@Example.COM"},
		{name: "whitespace duplicate", email: "  rahul@example.com  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Signup(ctx, dto.SignupRequest{
				Name:            "Someone Else",
				Email:           tt.email,
				Password:        "secret12",
				ConfirmPassword: "secret12",
			})
			assert.ErrorIs(t, err, failure.EmailTaken)
		})
	}
}

func TestIdentityService_Login(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	signup(t, svc, "Rahul Sharma", "rahul@example.com", "secret12")

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "successful login",
			email:    "rahul@example.com",
			password: "secret12",
		},
		{
			name:     "case-insensitive email",
			email:    "Rahul@EXAMPLE.com",
			password: "secret12",
		},
		{
			name:     "wrong password",
			email:    "rahul@example.com",
			password: "wrong",
			wantErr:  failure.InvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret12",
			wantErr:  failure.InvalidCredentials,
		},
		{
			name:     "password comparison is case-sensitive",
			email:    "rahul@example.com",
			password: "SECRET12",
			wantErr:  failure.InvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Login(ctx, dto.LoginRequest{Email: tt.email, Password: tt.password})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.AccessToken)
			assert.NotEmpty(t, res.RefreshToken)
			assert.Equal(t, "rahul@example.com", res.User.Email)

			session, err := svc.CurrentSession(ctx)
			require.NoError(t, err)
			assert.Equal(t, res.User.ID, session.ID)
		})
	}
}

func TestIdentityService_RefreshToken(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	signup(t, svc, "Rahul Sharma", "rahul@example.com", "secret12")

	login, err := svc.Login(ctx, dto.LoginRequest{Email: "rahul@example.com", Password: "secret12"})
	require.NoError(t, err)

	res, err := svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)

	_, err = svc.RefreshToken(ctx, dto.RefreshTokenRequest{RefreshToken: "garbage"})
	assert.Error(t, err)
}

func TestIdentityService_Logout(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	signup(t, svc, "Rahul Sharma", "rahul@example.com", "secret12")

	_, err := svc.Login(ctx, dto.LoginRequest{Email: "rahul@example.com", Password: "secret12"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	_, err = svc.CurrentSession(ctx)
	assert.Error(t, err)

	// Logging out twice is harmless.
	assert.NoError(t, svc.Logout(ctx))
}

func TestIdentityService_UpdateProfile(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	signup(t, svc, "Rahul Sharma", "rahul@example.com", "secret12")

	login, err := svc.Login(ctx, dto.LoginRequest{Email: "rahul@example.com", Password: "secret12"})
	require.NoError(t, err)

	req := dto.UpdateProfileRequest{
		Name:  "Rahul S",
		Email: "rahul.s@example.com",
		Phone: "9876543210",
	}
	require.NoError(t, svc.UpdateProfile(ctx, req, login.User.ID))

	user, found, err := repo.FindByID(ctx, login.User.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Rahul S", user.Name)
	assert.Equal(t, "rahul.s@example.com", user.Email)
	assert.Equal(t, "9876543210", user.Phone)

	// Session snapshot follows the profile.
	session, err := svc.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rahul.s@example.com", session.Email)
}

func TestIdentityService_UpdateProfile_NotFound(t *testing.T) {
	svc, _, _ := newService(t)

	err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{
		Name:  "Ghost",
		Email: "ghost@example.com",
	}, "missing-id")

	assert.Error(t, err)
}

func TestIdentityService_DeleteUser_Cascades(t *testing.T) {
	svc, repo, store := newService(t)
	ctx := context.Background()

	signup(t, svc, "Rahul Sharma", "rahul@example.com", "secret12")

	user, found, err := repo.FindByEmail(ctx, "rahul@example.com")
	require.NoError(t, err)
	require.True(t, found)

	tenantKeys := []string{
		fmt.Sprintf(constant.StoreKeyBookings, user.ID),
		fmt.Sprintf(constant.StoreKeyPaymentMethods, user.ID),
		fmt.Sprintf(constant.StoreKeyPassengers, user.ID),
	}
	for _, key := range tenantKeys {
		require.NoError(t, store.Put(ctx, key, []string{"some-data"}))
	}

	require.NoError(t, svc.DeleteUser(ctx, user.ID))

	_, found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, found)

	for _, key := range tenantKeys {
		var out []string
		assert.ErrorIs(t, store.Get(ctx, key, &out), kvstore.ErrNotFound, "expected %s to be dropped", key)
	}
}

func TestIdentityService_DeleteUser_Guards(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdministrator(ctx))

	err := svc.DeleteUser(ctx, constant.AdminID)
	assert.Error(t, err, "administrator must not be deletable")

	err = svc.DeleteUser(ctx, "missing-id")
	assert.Error(t, err)
}

package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"tatkal/config"
	"tatkal/infras/jwt"
	"tatkal/infras/otel"
	"tatkal/internal/domains/identity/model"
	"tatkal/internal/domains/identity/model/dto"
	"tatkal/internal/domains/identity/repository"
	"tatkal/shared/constant"
	"tatkal/shared/failure"
	"tatkal/shared/timezone"
)

type Identity interface {
	EnsureAdministrator(ctx context.Context) error
	Signup(ctx context.Context, req dto.SignupRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (dto.UserResponse, error)
	GetProfile(ctx context.Context, userID string) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, userID string) error
	DeleteUser(ctx context.Context, userID string) error
	ListUsers(ctx context.Context) ([]model.User, error)
}

type serviceImpl struct {
	repo       repository.Identity
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(repo repository.Identity, cfg *config.Config, ot otel.Otel, jwt jwt.JWT) Identity {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		otel:       ot,
		jwtService: jwt,
	}
}

// EnsureAdministrator upserts the canonical administrator record. Runs at
// every startup and is idempotent: an existing record keeps its id and
// createdAt, everything else is reset to the canonical values.
func (s *serviceImpl) EnsureAdministrator(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureAdministrator")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, found, err := s.repo.FindByEmail(ctx, constant.AdminEmail)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up administrator")

		return fmt.Errorf("failed to look up administrator: %w", err)
	}

	if !found {
		admin := model.User{
			ID:        constant.AdminID,
			Name:      constant.AdminName,
			Email:     constant.AdminEmail,
			Password:  constant.AdminPassword,
			Role:      constant.RoleAdmin,
			CreatedAt: timezone.Now(),
		}

		if err = s.repo.Insert(ctx, admin); err != nil {
			log.Error().Err(err).Msg("failed to create administrator")

			return fmt.Errorf("failed to create administrator: %w", err)
		}

		log.Info().Str("email", constant.AdminEmail).Msg("administrator account created")

		return nil
	}

	_, err = s.repo.Update(ctx, existing.ID, func(u *model.User) {
		u.Name = constant.AdminName
		u.Email = constant.AdminEmail
		u.Password = constant.AdminPassword
		u.Role = constant.RoleAdmin
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to reset administrator")

		return fmt.Errorf("failed to reset administrator: %w", err)
	}

	return nil
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Signup")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, exists, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return failure.EmailTaken
	}

	if err = s.repo.Insert(ctx, req.ToModel()); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, found, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user")

		return res, fmt.Errorf("failed to look up user: %w", err)
	}

	// Passwords are stored and compared in plain text, faithfully to the
	// system this replaces. Do not reuse real credentials against it.
	if !found || user.Password != req.Password {
		log.Warn().Str("email", req.Email).Msg("login attempt with invalid credentials")

		return res, failure.InvalidCredentials
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err = s.repo.SaveSession(ctx, user); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to save session")

		return res, fmt.Errorf("failed to save session: %w", err)
	}

	res.User.FromModel(user)
	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.ClearSession(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

func (s *serviceImpl) CurrentSession(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentSession")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, found, err := s.repo.GetSession(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return res, fmt.Errorf("failed to get session: %w", err)
	}

	if !found {
		return res, failure.NotFound("no active session")
	}

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetProfile(ctx context.Context, userID string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, found, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if !found {
		return res, failure.NotFound("user not found")
	}

	res.FromModel(user)

	return res, nil
}

// UpdateProfile overwrites name, email and phone. Email uniqueness is not
// re-checked here; two profiles can end up sharing an address, matching the
// behaviour being reproduced.
func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	matched, err := s.repo.Update(ctx, userID, func(u *model.User) {
		u.Name = req.Name
		u.Email = req.Email
		u.Phone = req.Phone
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update user")

		return fmt.Errorf("failed to update user: %w", err)
	}

	if matched == 0 {
		return failure.NotFound("user not found")
	}

	session, found, err := s.repo.GetSession(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get session")

		return fmt.Errorf("failed to get session: %w", err)
	}

	if found && session.ID == userID {
		session.Name = req.Name
		session.Email = req.Email
		session.Phone = req.Phone

		if err = s.repo.SaveSession(ctx, session); err != nil {
			log.Error().Err(err).Msg("failed to refresh session snapshot")

			return fmt.Errorf("failed to refresh session snapshot: %w", err)
		}
	}

	return nil
}

// DeleteUser removes the user record, then drops the user's bookings,
// payment methods and passengers. Four independent writes: a failure part
// way through leaves the earlier ones in place and is never rolled back.
func (s *serviceImpl) DeleteUser(ctx context.Context, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteUser")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, found, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if !found {
		return failure.NotFound("user not found")
	}

	if user.Role == constant.RoleAdmin {
		return failure.BadRequestFromString("cannot delete administrator account")
	}

	if _, err = s.repo.Remove(ctx, userID); err != nil {
		log.Error().Err(err).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err = s.repo.PurgeTenantKeys(ctx, userID); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("cascade delete left orphaned tenant data")

		return fmt.Errorf("failed to purge tenant data: %w", err)
	}

	return nil
}

func (s *serviceImpl) ListUsers(ctx context.Context) (users []model.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListUsers")
	defer scope.End()
	defer scope.TraceIfError(err)

	users, err = s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")

		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

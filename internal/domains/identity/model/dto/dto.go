package dto

import (
	"time"

	"github.com/google/uuid"

	"tatkal/infras/jwt"
	"tatkal/internal/domains/identity/model"
	"tatkal/shared/constant"
	"tatkal/shared/timezone"
)

type SignupRequest struct {
	Name            string `json:"name"             validate:"required"`
	Email           string `json:"email"            validate:"required,email"`
	Phone           string `json:"phone,omitempty"  validate:"omitempty,min=7,max=15"`
	Password        string `json:"password"         validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

// ToModel builds the stored user. The role is always "user": signup is a
// public endpoint and must never mint administrators.
func (r *SignupRequest) ToModel() model.User {
	return model.User{
		ID:        uuid.NewString(),
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  r.Password,
		Role:      constant.RoleUser,
		CreatedAt: timezone.Now(),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type UpdateProfileRequest struct {
	Name  string `json:"name"            validate:"required"`
	Email string `json:"email"           validate:"required,email"`
	Phone string `json:"phone,omitempty" validate:"omitempty,min=7,max=15"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *UserResponse) FromModel(m model.User) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Phone = m.Phone
	r.Role = m.Role
	r.CreatedAt = m.CreatedAt
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User) {
	r.TotalData = len(models)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}

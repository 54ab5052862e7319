package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tatkal/config"
	"tatkal/infras/jwt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "tatkal-test"
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 60
	cfg.JWT.RefreshExpireMin = 10080

	return cfg
}

func TestGenerateTokenPair(t *testing.T) {
	service := jwt.New(testConfig())

	pair, err := service.GenerateTokenPair("user-1", "ravi@example.com", "user")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(3600), pair.ExpiresIn)
}

func TestValidateToken(t *testing.T) {
	service := jwt.New(testConfig())

	pair, err := service.GenerateTokenPair("user-1", "ravi@example.com", "admin")
	require.NoError(t, err)

	claims, err := service.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ravi@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, jwt.AccessToken, claims.Type)
	assert.NotEmpty(t, claims.TokenID)
}

func TestValidateToken_WrongType(t *testing.T) {
	service := jwt.New(testConfig())

	pair, err := service.GenerateTokenPair("user-1", "ravi@example.com", "user")
	require.NoError(t, err)

	_, err = service.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)

	_, err = service.ValidateToken(pair.AccessToken, jwt.RefreshToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	service := jwt.New(testConfig())

	_, err := service.ValidateToken("not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service := jwt.New(testConfig())

	other := testConfig()
	other.JWT.AccessSecret = "a-different-secret"
	otherService := jwt.New(other)

	pair, err := service.GenerateTokenPair("user-1", "ravi@example.com", "user")
	require.NoError(t, err)

	_, err = otherService.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestRefreshTokens(t *testing.T) {
	service := jwt.New(testConfig())

	pair, err := service.GenerateTokenPair("user-1", "ravi@example.com", "user")
	require.NoError(t, err)

	refreshed, err := service.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := service.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ravi@example.com", claims.Email)
}

func TestRefreshTokens_RejectsAccessToken(t *testing.T) {
	service := jwt.New(testConfig())

	pair, err := service.GenerateTokenPair("user-1", "ravi@example.com", "user")
	require.NoError(t, err)

	_, err = service.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Token abc.def.ghi")
	assert.Error(t, err)
}

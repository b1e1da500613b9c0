package dto_test

import (
	"testing"

	"homestay/infras/jwt"
	"homestay/internal/domains/auth/model/dto"

	"github.com/stretchr/testify/assert"
)

func TestLoginResponseFromTokenPair(t *testing.T) {
	pair := &jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	res := dto.LoginResponse{}
	res.FromTokenPair(pair)

	assert.Equal(t, "access", res.AccessToken)
	assert.Equal(t, "refresh", res.RefreshToken)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, int64(900), res.ExpiresIn)
}

func TestRefreshTokenResponseFromTokenPair(t *testing.T) {
	pair := &jwt.TokenPair{
		AccessToken:  "access2",
		RefreshToken: "refresh2",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	res := dto.RefreshTokenResponse{}
	res.FromTokenPair(pair)

	assert.Equal(t, "access2", res.AccessToken)
	assert.Equal(t, "refresh2", res.RefreshToken)
}

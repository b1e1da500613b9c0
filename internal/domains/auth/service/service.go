package service

import (
	"context"
	"fmt"

	"homestay/config"
	"homestay/infras/jwt"
	"homestay/infras/otel"
	"homestay/internal/domains/auth/model/dto"
	"homestay/shared/constant"
	"homestay/shared/failure"
	"homestay/shared/password"

	"github.com/rs/zerolog/log"
)

const ownerUserID = "owner"

// Auth authenticates the homestay owner. There is exactly one account,
// whose email and bcrypt password hash come from configuration; a
// successful login yields the JWT pair guarding the mutating routes.
type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.cfg.Auth.OwnerEmail == constant.Empty || s.cfg.Auth.OwnerPasswordHash == constant.Empty {
		log.Error().Msg("owner credentials are not configured")

		return res, failure.InternalError(fmt.Errorf("owner credentials are not configured")) // nolint:wrapcheck
	}

	if req.Email != s.cfg.Auth.OwnerEmail {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, s.cfg.Auth.OwnerPasswordHash); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ownerUserID, req.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

package token

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fitin/storefront/internal/constants"
	inErrors "github.com/fitin/storefront/internal/errors"
	"github.com/fitin/storefront/internal/log"
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (cl Claims) Admin() bool {
	return cl.Role == "admin"
}

func Mint(userId uuid.UUID, role string, secretKey string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(
		jwt.SigningMethodHS256,
		Claims{
			Role: role,
			RegisteredClaims: jwt.RegisteredClaims{
				Audience:  jwt.ClaimStrings{constants.AUDIENCE_USER},
				Issuer:    constants.APP_USER_SERVICE,
				Subject:   userId.String(),
				ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
				IssuedAt:  jwt.NewNumericDate(now),
			},
		},
	)
	return t.SignedString([]byte(secretKey))
}

func Verify(c context.Context, tokenString string, secretKey string) (*Claims, error) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "token Verify").
		Logger()

	claims := &Claims{}
	jwtToken, err := jwt.ParseWithClaims(tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		},
		jwt.WithAudience(constants.AUDIENCE_USER),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(constants.APP_USER_SERVICE),
	)
	if err != nil {
		err = fmt.Errorf("failed parsing with claims with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	if !jwtToken.Valid {
		logger.Error().Err(inErrors.ErrTokenInvalid).Msg(inErrors.ErrTokenInvalid.Error())
		return nil, inErrors.ErrTokenInvalid
	}
	return claims, nil
}

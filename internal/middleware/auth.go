package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	inErrors "github.com/fitin/storefront/internal/errors"
	inHttp "github.com/fitin/storefront/internal/http"
	"github.com/fitin/storefront/internal/log"
	"github.com/fitin/storefront/internal/token"
)

type claimsKey struct{}

func ClaimsFromContext(c context.Context) (*token.Claims, bool) {
	claims, ok := c.Value(claimsKey{}).(*token.Claims)
	return claims, ok
}

func Auth(secretKey string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).
				With().
				Str(log.KeyTag, "middleware Auth").
				Logger()
			c := logger.WithContext(r.Context())

			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				logger.Error().Err(inErrors.ErrEmptyAuth).Msg(inErrors.ErrEmptyAuth.Error())
				inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusUnauthorized,
					"message":    inErrors.ErrEmptyAuth.Error(),
				})
				return
			}

			tokenString := strings.TrimPrefix(authorization, "Bearer ")
			claims, err := token.Verify(c, tokenString, secretKey)
			if err != nil {
				logger.Error().Err(err).Msg(err.Error())
				inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusUnauthorized,
					"message":    inErrors.ErrTokenInvalid.Error(),
				})
				return
			}

			c = context.WithValue(c, claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(c))
		})
	}
}

func Admin(secretKey string) mux.MiddlewareFunc {
	auth := Auth(secretKey)
	return func(next http.Handler) http.Handler {
		return auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zerolog.Ctx(r.Context()).
				With().
				Str(log.KeyTag, "middleware Admin").
				Logger()
			c := logger.WithContext(r.Context())

			claims, ok := ClaimsFromContext(c)
			if !ok || !claims.Admin() {
				logger.Error().Err(inErrors.ErrNotAdmin).Msg(inErrors.ErrNotAdmin.Error())
				inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
					"status":     "failed",
					"statusCode": http.StatusForbidden,
					"message":    inErrors.ErrNotAdmin.Error(),
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(c))
		}))
	}
}

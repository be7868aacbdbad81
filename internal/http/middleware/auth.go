package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/beerstock/internal/auth"
	"go.uber.org/zap"
)

type contextKey string

const claimsKey = contextKey("claims")

// TokenParser is satisfied by *auth.JWTManager.
type TokenParser interface {
	ParseToken(tokenStr string) (auth.Claims, error)
}

func Auth(parser TokenParser, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			claims, err := parser.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Debug("rejected token", zap.String("path", r.URL.Path), zap.Error(err))
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims stored by Auth.
func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(auth.Claims)
	return claims, ok
}

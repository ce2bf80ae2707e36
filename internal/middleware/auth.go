package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"swertres_backend/internal/config"
	"swertres_backend/internal/model"
	"swertres_backend/pkg/token"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	roleKey
)

// Auth - middleware, проверяющее Bearer токен и кладущее
// ID и роль пользователя в контекст запроса
func Auth(jwtCfg config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := claimsFromRequest(r, jwtCfg)
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// AuthOptional - как Auth, но пропускает запрос без токена дальше.
// Используется на /auth/register для первичной регистрации админа
func AuthOptional(jwtCfg config.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := claimsFromRequest(r, jwtCfg); ok {
				r = r.WithContext(withClaims(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole - пускает дальше только перечисленные роли
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "forbidden", http.StatusForbidden)
		})
	}
}

func claimsFromRequest(r *http.Request, jwtCfg config.JWTConfig) (*model.UserClaims, bool) {
	header := r.Header.Get("Authorization")
	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenStr == "" {
		return nil, false
	}

	claims, err := token.VerifyToken(tokenStr, jwtCfg.AccessTokenSecretKey())
	if err != nil {
		return nil, false
	}

	return claims, true
}

func withClaims(ctx context.Context, claims *model.UserClaims) context.Context {
	if id, err := strconv.Atoi(claims.ID); err == nil {
		ctx = context.WithValue(ctx, userIDKey, id)
	}
	return context.WithValue(ctx, roleKey, model.Role(claims.Role))
}

// UserIDFromContext - ID аутентифицированного пользователя
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// RoleFromContext - роль аутентифицированного пользователя
func RoleFromContext(ctx context.Context) (model.Role, bool) {
	role, ok := ctx.Value(roleKey).(model.Role)
	return role, ok
}

// ContextWithUser - контекст с заданными ID и ролью.
// Используется в тестах сервисного слоя
func ContextWithUser(ctx context.Context, id int, role model.Role) context.Context {
	ctx = context.WithValue(ctx, userIDKey, id)
	return context.WithValue(ctx, roleKey, role)
}

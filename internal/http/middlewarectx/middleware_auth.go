// Package middlewarectx содержит HTTP middleware сессионного шлюза.
//
// JWTMiddleware проверяет Bearer-токен и на каждом запросе перечитывает
// пользователя из хранилища, после чего кладёт его идентичность в контекст.
// AdminMiddleware поверх него отсекает не-администраторов. Порядок важен:
// неаутентифицированный запрос к админскому маршруту получает 401, а не 403.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vc-metrics/internal/http/response"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/sl"
	"github.com/magabrotheeeer/vc-metrics/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ идентификатора пользователя в контексте.
	UserID Key = "user_id"
	// Email — ключ email пользователя в контексте.
	Email Key = "email"
	// IsAdmin — ключ признака администратора в контексте.
	IsAdmin Key = "is_admin"
)

// AuthService описывает интерфейс разрешения идентичности по токену.
type AuthService interface {
	// Authenticate разбирает токен и возвращает актуального пользователя.
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// JWTMiddleware возвращает middleware, проверяющий Bearer-токен.
//
// Пользователь читается из хранилища заново при каждом запросе, поэтому
// удалённая или разжалованная учётная запись теряет доступ немедленно,
// даже если её токен ещё не истёк.
func JWTMiddleware(log *slog.Logger, authService AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.ErrorKind(response.KindUnauthenticated,
					"missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := authService.Authenticate(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.ErrorKind(response.KindUnauthenticated,
					"invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), UserID, user.ID)
			ctx = context.WithValue(ctx, Email, user.Email)
			ctx = context.WithValue(ctx, IsAdmin, user.IsAdmin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware пропускает дальше только администраторов.
// Рассчитывает на то, что JWTMiddleware уже положил идентичность в контекст.
func AdminMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminMiddleware"

			isAdmin, ok := r.Context().Value(IsAdmin).(bool)
			if !ok {
				log.Error("identity missing in context",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.ErrorKind(response.KindUnauthenticated, "unauthorized"))
				return
			}
			if !isAdmin {
				log.Error("admin access denied",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.ErrorKind(response.KindForbidden, "forbidden"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

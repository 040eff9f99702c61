package vcmetrics

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/vc-metrics/internal/http/handlers/admin/setprice"
	articlecreate "github.com/magabrotheeeer/vc-metrics/internal/http/handlers/article/create"
	articlelist "github.com/magabrotheeeer/vc-metrics/internal/http/handlers/article/list"
	"github.com/magabrotheeeer/vc-metrics/internal/http/handlers/article/refresh"
	"github.com/magabrotheeeer/vc-metrics/internal/http/handlers/article/refreshall"
	articleremove "github.com/magabrotheeeer/vc-metrics/internal/http/handlers/article/remove"
	"github.com/magabrotheeeer/vc-metrics/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/vc-metrics/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/vc-metrics/internal/http/handlers/auth/me"
	userinvite "github.com/magabrotheeeer/vc-metrics/internal/http/handlers/user/invite"
	userlist "github.com/magabrotheeeer/vc-metrics/internal/http/handlers/user/list"
	userremove "github.com/magabrotheeeer/vc-metrics/internal/http/handlers/user/remove"
	userreset "github.com/magabrotheeeer/vc-metrics/internal/http/handlers/user/reset"
	"github.com/magabrotheeeer/vc-metrics/internal/http/middlewarectx"
	articleservice "github.com/magabrotheeeer/vc-metrics/internal/services/article"
	authservice "github.com/magabrotheeeer/vc-metrics/internal/services/auth"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, articleService *articleservice.ArticleService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(logger, authService))
			r.Post("/logout", logout.New(logger).ServeHTTP)
			r.Get("/me", me.New(logger).ServeHTTP)
			r.Get("/articles", articlelist.New(logger, articleService).ServeHTTP)
			r.Post("/articles", articlecreate.New(logger, articleService).ServeHTTP)
			r.Patch("/articles/{id}/refresh", refresh.New(logger, articleService).ServeHTTP)
			r.Delete("/articles/{id}", articleremove.New(logger, articleService).ServeHTTP)
			r.Post("/articles/refresh-all", refreshall.New(logger, articleService).ServeHTTP)

			// Группа только для администраторов
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminMiddleware(logger))
				r.Get("/users", userlist.New(logger, authService).ServeHTTP)
				r.Post("/users/invite", userinvite.New(logger, authService).ServeHTTP)
				r.Post("/users/reset", userreset.New(logger, authService).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, authService).ServeHTTP)
				r.Post("/admin/price", setprice.New(logger, articleService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

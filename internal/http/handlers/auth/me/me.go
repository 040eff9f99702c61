// Package me реализует HTTP-обработчик "кто я".
//
// Идентичность уже разрешена сессионным шлюзом и лежит в контексте запроса;
// обработчик лишь возвращает её безопасную проекцию.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vc-metrics/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vc-metrics/internal/http/response"
)

// Handler обрабатывает HTTP-запросы идентичности текущего оператора.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Текущий оператор
// @Description Возвращает идентичность владельца токена.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.OKResponse
// @Failure 401 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok {
		log.Error("identity missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.ErrorKind(response.KindUnauthenticated, "unauthorized"))
		return
	}
	email, _ := r.Context().Value(middlewarectx.Email).(string)
	isAdmin, _ := r.Context().Value(middlewarectx.IsAdmin).(bool)

	render.JSON(w, r, response.OKWithData(map[string]any{
		"id":       userID,
		"email":    email,
		"is_admin": isAdmin,
	}))
}

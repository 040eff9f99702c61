// Package remove реализует HTTP-обработчик удаления пользователя.
//
// Удаление собственной учётной записи запрещено, чтобы администратор
// не лишил себя доступа.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vc-metrics/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vc-metrics/internal/http/response"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/sl"
	authservice "github.com/magabrotheeeer/vc-metrics/internal/services/auth"
)

// Service описывает интерфейс бизнес-логики удаления пользователя.
type Service interface {
	DeleteUser(ctx context.Context, callerID, userID int) error
}

// Handler обрабатывает HTTP-запросы удаления пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить пользователя
// @Description Удаляет учётную запись; собственную запись удалить нельзя.
// @Tags Users
// @Produce  json
// @Param id path int true "ID пользователя"
// @Success 200 {object} response.OKResponse
// @Failure 400 {object} response.ErrorResponse "Попытка удалить самого себя"
// @Failure 404 {object} response.ErrorResponse "Нет такого пользователя"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		log.Error("invalid user id in path")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ErrorKind(response.KindValidation, "invalid user id"))
		return
	}

	callerID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok {
		log.Error("identity missing in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.ErrorKind(response.KindUnauthenticated, "unauthorized"))
		return
	}

	if err := h.service.DeleteUser(r.Context(), callerID, id); err != nil {
		switch {
		case errors.Is(err, authservice.ErrSelfDelete):
			log.Info("self delete refused", slog.Int("id", id))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.ErrorKind(response.KindValidation, "cannot delete own account"))
		case errors.Is(err, authservice.ErrUserNotFound):
			log.Info("delete rejected, user not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.ErrorKind(response.KindNotFound, "user not found"))
		default:
			log.Error("failed to delete user", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.ErrorKind(response.KindInternal, "internal error"))
		}
		return
	}

	log.Info("user deleted", slog.Int("id", id))
	render.JSON(w, r, response.OK())
}

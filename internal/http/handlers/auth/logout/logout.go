// Package logout реализует HTTP-обработчик выхода из консоли.
//
// Сессионные токены самодостаточны и на сервере не хранятся, поэтому выход
// сводится к подтверждению: клиент, получив ответ, удаляет токен у себя.
// Операция не может завершиться неуспехом.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vc-metrics/internal/http/response"
)

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Выход из консоли
// @Description Подтверждает выход; клиент удаляет токен на своей стороне.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.OKResponse
// @Failure 401 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	h.log.Info("logout",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	render.JSON(w, r, response.OK())
}

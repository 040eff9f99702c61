// Package refreshall реализует HTTP-обработчик массового обновления счётчиков.
//
// Сбой обновления отдельной статьи не прерывает проход: ответ успешен,
// если сам список удалось прочитать.
package refreshall

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vc-metrics/internal/http/response"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики массового обновления.
type Service interface {
	RefreshAll(ctx context.Context) (int, error)
}

// Handler обрабатывает HTTP-запросы массового обновления.
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
// @Summary Обновить счётчики всех статей
// @Description Проходит по всем статьям; сбои отдельных статей пропускаются.
// @Tags Articles
// @Produce  json
// @Success 200 {object} response.OKResponse
// @Failure 500 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /articles/refresh-all [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.refreshall"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	count, err := h.service.RefreshAll(r.Context())
	if err != nil {
		log.Error("failed to refresh articles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorKind(response.KindInternal, "internal error"))
		return
	}

	log.Info("articles refreshed", slog.Int("count", count))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"count": count,
	}))
}

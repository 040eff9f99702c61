// Package list реализует HTTP-обработчик списка отслеживаемых статей.
//
// Вместе со списком возвращается текущая цена размещения: из неё клиент
// считает стоимость тысячи показов, на сервере метрика не хранится.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vc-metrics/internal/http/response"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/sl"
	articleservice "github.com/magabrotheeeer/vc-metrics/internal/services/article"
)

// Service описывает интерфейс бизнес-логики списка статей.
type Service interface {
	List(ctx context.Context) (*articleservice.ListResult, error)
}

// Handler обрабатывает HTTP-запросы списка статей.
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
// @Summary Список статей
// @Description Возвращает статьи по дате публикации и цену размещения.
// @Tags Articles
// @Produce  json
// @Success 200 {object} response.OKResponse
// @Failure 401 {object} response.ErrorResponse
// @Security BearerAuth
// @Router /articles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list articles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorKind(response.KindInternal, "internal error"))
		return
	}

	log.Info("listed articles", slog.Int("count", len(res.Items)))
	render.JSON(w, r, response.OKWithData(res))
}

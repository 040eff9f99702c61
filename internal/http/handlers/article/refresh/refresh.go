// Package refresh реализует HTTP-обработчик обновления счётчиков одной статьи.
package refresh

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vc-metrics/internal/http/response"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/sl"
	"github.com/magabrotheeeer/vc-metrics/internal/models"
	articleservice "github.com/magabrotheeeer/vc-metrics/internal/services/article"
)

// Service описывает интерфейс бизнес-логики обновления статьи.
type Service interface {
	RefreshOne(ctx context.Context, id int) (*models.Article, error)
}

// Handler обрабатывает HTTP-запросы обновления статьи.
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
// @Summary Обновить счётчики статьи
// @Description Запрашивает свежие счётчики из внешнего API и сохраняет их.
// @Tags Articles
// @Produce  json
// @Param id path int true "ID статьи"
// @Success 200 {object} response.OKResponse
// @Failure 404 {object} response.ErrorResponse "Статья не отслеживается"
// @Failure 502 {object} response.ErrorResponse "Внешний API недоступен"
// @Security BearerAuth
// @Router /articles/{id}/refresh [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.refresh"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		log.Error("invalid article id in path")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ErrorKind(response.KindValidation, "invalid article id"))
		return
	}

	item, err := h.service.RefreshOne(r.Context(), id)
	if err != nil {
		if errors.Is(err, articleservice.ErrArticleNotFound) {
			log.Info("refresh rejected, article not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.ErrorKind(response.KindNotFound, "article not found"))
			return
		}
		log.Error("failed to refresh article", sl.Err(err))
		w.WriteHeader(http.StatusBadGateway)
		render.JSON(w, r, response.ErrorKind(response.KindUpstream, "failed to fetch article"))
		return
	}

	log.Info("article refreshed", slog.Int("id", item.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"item": item,
	}))
}

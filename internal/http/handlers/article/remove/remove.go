// Package remove реализует HTTP-обработчик снятия статьи с отслеживания.
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

	"github.com/magabrotheeeer/vc-metrics/internal/http/response"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/sl"
	articleservice "github.com/magabrotheeeer/vc-metrics/internal/services/article"
)

// Service описывает интерфейс бизнес-логики удаления статьи.
type Service interface {
	Remove(ctx context.Context, id int) error
}

// Handler обрабатывает HTTP-запросы удаления статьи.
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
// @Summary Снять статью с отслеживания
// @Description Удаляет статью из реестра вместе с накопленными счётчиками.
// @Tags Articles
// @Produce  json
// @Param id path int true "ID статьи"
// @Success 200 {object} response.OKResponse
// @Failure 404 {object} response.ErrorResponse "Статья не отслеживается"
// @Security BearerAuth
// @Router /articles/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.remove"

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

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, articleservice.ErrArticleNotFound) {
			log.Info("remove rejected, article not found", slog.Int("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.ErrorKind(response.KindNotFound, "article not found"))
			return
		}
		log.Error("failed to remove article", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorKind(response.KindInternal, "internal error"))
		return
	}

	log.Info("article removed", slog.Int("id", id))
	render.JSON(w, r, response.OK())
}

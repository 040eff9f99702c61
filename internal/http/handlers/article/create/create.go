// Package create реализует HTTP-обработчик добавления статьи по ссылке.
//
// Из ссылки извлекается числовой ID, дубликаты отклоняются, данные статьи
// запрашиваются из внешнего контент-API до сохранения в реестре.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vc-metrics/internal/http/response"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/sl"
	"github.com/magabrotheeeer/vc-metrics/internal/models"
	articleservice "github.com/magabrotheeeer/vc-metrics/internal/services/article"
)

// Request — структура входных данных добавления статьи.
type Request struct {
	URL string `json:"url" validate:"required,url"`
}

// Service описывает интерфейс бизнес-логики добавления статьи.
type Service interface {
	Add(ctx context.Context, rawURL string) (*models.Article, error)
}

// Handler обрабатывает HTTP-запросы добавления статьи.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить статью
// @Description Извлекает ID из ссылки, запрашивает статью из внешнего API и сохраняет её.
// @Tags Articles
// @Accept  json
// @Produce  json
// @Param request body Request true "Ссылка на статью"
// @Success 200 {object} response.OKResponse
// @Failure 400 {object} response.ErrorResponse "Не удалось извлечь ID из ссылки"
// @Failure 409 {object} response.ErrorResponse "Такая статья уже есть"
// @Failure 502 {object} response.ErrorResponse "Внешний API недоступен"
// @Security BearerAuth
// @Router /articles [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ErrorKind(response.KindValidation, "invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	item, err := h.service.Add(r.Context(), req.URL)
	if err != nil {
		switch {
		case errors.Is(err, articleservice.ErrNoArticleID):
			log.Info("add rejected, no id in link", slog.String("url", req.URL))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.ErrorKind(response.KindValidation,
				"could not extract article id from link"))
		case errors.Is(err, articleservice.ErrArticleExists):
			log.Info("add rejected, duplicate", slog.String("url", req.URL))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.ErrorKind(response.KindConflict, "article already tracked"))
		default:
			log.Error("failed to add article", sl.Err(err))
			w.WriteHeader(http.StatusBadGateway)
			render.JSON(w, r, response.ErrorKind(response.KindUpstream, "failed to fetch article"))
		}
		return
	}

	log.Info("article added", slog.Int("id", item.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"item": item,
	}))
}

// Package setprice реализует HTTP-обработчик установки цены размещения.
//
// Цена не кешируется, поэтому следующий запрос списка статей уже видит
// новое значение.
package setprice

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vc-metrics/internal/http/response"
	"github.com/magabrotheeeer/vc-metrics/internal/lib/sl"
)

// Request — структура входных данных установки цены.
type Request struct {
	Price float64 `json:"price" validate:"gte=0"`
}

// Service описывает интерфейс бизнес-логики цены размещения.
type Service interface {
	SetPrice(ctx context.Context, price float64) error
}

// Handler обрабатывает HTTP-запросы установки цены.
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
// @Summary Установить цену размещения
// @Description Сохраняет цену размещения, видимую всем пользователям в списке статей.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param request body Request true "Новая цена"
// @Success 200 {object} response.OKResponse
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Security BearerAuth
// @Router /admin/price [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.setprice"

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

	if err := h.service.SetPrice(r.Context(), req.Price); err != nil {
		log.Error("failed to set placement price", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorKind(response.KindInternal, "internal error"))
		return
	}

	log.Info("placement price updated", slog.Float64("price", req.Price))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"placement_price": req.Price,
	}))
}

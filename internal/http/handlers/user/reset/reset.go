// Package reset реализует HTTP-обработчик сброса пароля пользователя.
//
// Новый временный пароль возвращается один раз; действующие сессии
// пользователя не отзываются и истекают по TTL токена.
package reset

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
	authservice "github.com/magabrotheeeer/vc-metrics/internal/services/auth"
)

// Request — структура входных данных сброса пароля.
type Request struct {
	ID int `json:"id" validate:"required,gt=0"`
}

// Service описывает интерфейс бизнес-логики сброса пароля.
type Service interface {
	ResetPassword(ctx context.Context, userID int) (string, error)
}

// Handler обрабатывает HTTP-запросы сброса пароля.
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
// @Summary Сбросить пароль пользователя
// @Description Перезаписывает хэш пароля, возвращает временный пароль один раз.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param request body Request true "ID пользователя"
// @Success 200 {object} response.OKResponse
// @Failure 404 {object} response.ErrorResponse "Нет такого пользователя"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Security BearerAuth
// @Router /users/reset [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.reset"

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

	tempPassword, err := h.service.ResetPassword(r.Context(), req.ID)
	if err != nil {
		if errors.Is(err, authservice.ErrUserNotFound) {
			log.Info("reset rejected, user not found", slog.Int("id", req.ID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.ErrorKind(response.KindNotFound, "user not found"))
			return
		}
		log.Error("failed to reset password", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorKind(response.KindInternal, "internal error"))
		return
	}

	log.Info("password reset", slog.Int("id", req.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"temp_password": tempPassword,
	}))
}

// Package invite реализует HTTP-обработчик приглашения нового пользователя.
//
// Временный пароль возвращается в теле ответа в открытом виде ровно один
// раз — это осознанный канал разовой выдачи, в хранилище попадает только хэш.
package invite

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
	authservice "github.com/magabrotheeeer/vc-metrics/internal/services/auth"
)

// Request — структура входных данных приглашения.
type Request struct {
	Email   string `json:"email" validate:"required,email"`
	IsAdmin bool   `json:"is_admin"`
}

// Service описывает интерфейс бизнес-логики приглашения.
type Service interface {
	Invite(ctx context.Context, email string, isAdmin bool) (*models.User, string, error)
}

// Handler обрабатывает HTTP-запросы приглашения.
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
// @Summary Пригласить пользователя
// @Description Создаёт учётную запись и возвращает временный пароль один раз.
// @Tags Users
// @Accept  json
// @Produce  json
// @Param request body Request true "Email и роль нового пользователя"
// @Success 200 {object} response.OKResponse
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Пользователь уже существует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Security BearerAuth
// @Router /users/invite [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.invite"

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

	user, tempPassword, err := h.service.Invite(r.Context(), req.Email, req.IsAdmin)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			log.Info("invite rejected, email taken", slog.String("email", req.Email))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.ErrorKind(response.KindConflict, "user already exists"))
			return
		}
		log.Error("failed to invite user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.ErrorKind(response.KindInternal, "internal error"))
		return
	}

	log.Info("user invited", slog.Int("id", user.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"user":          user.Public(),
		"temp_password": tempPassword,
	}))
}

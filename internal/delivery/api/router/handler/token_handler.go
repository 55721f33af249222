package handler

import (
	"log/slog"
	"net/http"

	"promopush/internal/delivery/api/response"
	"promopush/internal/delivery/api/validator"
	deliverycontext "promopush/internal/delivery/context"
	"promopush/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TokenHandlerParams holds dependencies for TokenHandler, injected by Fx.
type TokenHandlerParams struct {
	fx.In

	TokenUC usecase.TokenUsecase
	Logger  *slog.Logger
}

// TokenHandler lets signed-in recipients register their devices
type TokenHandler struct {
	tokenUC usecase.TokenUsecase
	logger  *slog.Logger
}

func NewTokenHandler(params TokenHandlerParams) *TokenHandler {
	return &TokenHandler{
		tokenUC: params.TokenUC,
		logger:  params.Logger,
	}
}

// RegisterToken stores a device token for the caller. Registering the same
// token again succeeds without creating a duplicate.
func (h *TokenHandler) RegisterToken(c echo.Context) error {
	recipient, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Recipient missing from token")
	}

	var req usecase.TokenInfo
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid token input", validator.FieldErrors(err))
	}

	if err := h.tokenUC.RegisterToken(c.Request().Context(), recipient, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Token registered"})
}

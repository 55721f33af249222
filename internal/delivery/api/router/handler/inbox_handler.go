package handler

import (
	"net/http"

	"promopush/internal/delivery/api/response"
	deliverycontext "promopush/internal/delivery/context"
	"promopush/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InboxHandlerParams holds dependencies for InboxHandler, injected by Fx.
type InboxHandlerParams struct {
	fx.In

	InboxUC usecase.InboxUsecase
}

type InboxHandler struct {
	inboxUC usecase.InboxUsecase
}

func NewInboxHandler(params InboxHandlerParams) *InboxHandler {
	return &InboxHandler{inboxUC: params.InboxUC}
}

// GetInbox returns the caller's reconciled inbox, newest first.
func (h *InboxHandler) GetInbox(c echo.Context) error {
	recipient, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Recipient missing from token")
	}

	items, err := h.inboxUC.GetInbox(c.Request().Context(), recipient)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	AdminUC    usecase.AdminUsecase
	Logger     *slog.Logger
}

// AdminHandler serves the dispatch endpoints and the admin console views
type AdminHandler struct {
	dispatchUC usecase.DispatchUsecase
	adminUC    usecase.AdminUsecase
	logger     *slog.Logger
}

func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		dispatchUC: params.DispatchUC,
		adminUC:    params.AdminUC,
		logger:     params.Logger,
	}
}

// SendToOne pushes a message to every device of one recipient. A result with
// failed tokens is still a success: the delivery was logged.
func (h *AdminHandler) SendToOne(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Recipient missing from token")
	}

	var req usecase.SendToOneInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid notification input", validator.FieldErrors(err))
	}

	result, err := h.dispatchUC.SendToOne(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// SendToAll broadcasts a personalized message to every reachable recipient.
func (h *AdminHandler) SendToAll(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Recipient missing from token")
	}

	var req usecase.SendToAllInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_ERROR", "Invalid broadcast input", validator.FieldErrors(err))
	}

	result, err := h.dispatchUC.SendToAll(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, result)
}

// GetDispatchHistory lists delivery records of every recipient, newest first.
func (h *AdminHandler) GetDispatchHistory(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Recipient missing from token")
	}

	var limit, offset int
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return response.BadRequest(c, "INVALID_PAGINATION", "limit and offset must be integers")
	}

	records, err := h.adminUC.GetDispatchHistory(c.Request().Context(), actor, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.PagedData{
		Items: records,
		Page: &response.PageMeta{
			Limit:  limit,
			Offset: offset,
			Count:  len(records),
		},
	})
}

// ListReachableRecipients lists recipients that have at least one device.
func (h *AdminHandler) ListReachableRecipients(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Recipient missing from token")
	}

	recipients, err := h.adminUC.ListReachableRecipients(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, recipients)
}

// ListPromotions lists promotions that messages can link to.
func (h *AdminHandler) ListPromotions(c echo.Context) error {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Recipient missing from token")
	}

	promotions, err := h.adminUC.ListPromotions(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, promotions)
}

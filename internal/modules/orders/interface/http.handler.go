package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	cart "addisKitchen/internal/modules/cart/domain"
	cartinfra "addisKitchen/internal/modules/cart/infrastructure"
	carttransport "addisKitchen/internal/modules/cart/interface"
	"addisKitchen/internal/modules/orders/application/port"
	"addisKitchen/internal/modules/orders/application/usecase"
	"addisKitchen/internal/modules/orders/domain"
	"addisKitchen/internal/shared/apperr"
	"addisKitchen/internal/shared/httputil"
	"addisKitchen/internal/shared/notify"
)

// Handler serves public order submission and the admin order CRUD.
type Handler struct {
	submit   *usecase.SubmitOrderUseCase
	repo     port.Repository
	carts    *cartinfra.SessionStore
	notifier notify.Notifier
	mapper   *httputil.ErrorMapper
}

func NewHandler(submit *usecase.SubmitOrderUseCase, repo port.Repository, carts *cartinfra.SessionStore, notifier notify.Notifier) *Handler {
	return &Handler{
		submit:   submit,
		repo:     repo,
		carts:    carts,
		notifier: notifier,
		mapper:   httputil.NewErrorMapper(),
	}
}

func (h *Handler) Register(e *echo.Echo, admin *echo.Group) {
	e.POST("/api/orders", h.submitOrder)

	admin.GET("/orders", h.adminList)
	admin.GET("/orders/:id", h.adminGet)
	admin.PUT("/orders/:id/status", h.adminUpdateStatus)
	admin.DELETE("/orders/:id", h.adminDelete)
}

type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (h *Handler) submitOrder(c echo.Context) error {
	var req submitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	customer := domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Notes:   req.Notes,
	}

	// The submission runs inside the session store callback so the cart stays
	// serialized against concurrent mutations from the same session.
	var (
		order     *domain.Order
		submitErr error
	)
	token := ""
	if cookie, err := c.Cookie(carttransport.CookieName); err == nil {
		token = cookie.Value
	}
	submitted := false
	if token != "" {
		submitted = h.carts.Peek(token, func(crt *cart.Cart) {
			order, submitErr = h.submit.Execute(c.Request().Context(), usecase.SubmitOrderInput{
				Cart:     crt,
				Customer: customer,
			})
		})
	}
	if !submitted {
		order, submitErr = h.submit.Execute(c.Request().Context(), usecase.SubmitOrderInput{
			Cart:     &cart.Cart{},
			Customer: customer,
		})
	}
	if submitErr != nil {
		return h.fail(submitErr)
	}
	if submitted {
		// The cart was cleared on success; release the session entry too.
		h.carts.Drop(token)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *Handler) adminList(c echo.Context) error {
	orders, err := h.repo.List(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) adminGet(c echo.Context) error {
	order, err := h.repo.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, order)
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) adminUpdateStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	ctx := c.Request().Context()
	id := c.Param("id")

	target := domain.ParseStatus(req.Status)
	if target == domain.StatusUnknown {
		h.notifier.Notify(ctx, notify.Failure("order", "update_status", id, "unknown status "+req.Status))
		return h.fail(apperr.Validation("unknown status %q", req.Status))
	}

	current, err := h.repo.Get(ctx, id)
	if err != nil {
		h.notifier.Notify(ctx, notify.Failure("order", "update_status", id, "order could not be loaded"))
		return h.fail(err)
	}
	if !domain.CanTransition(current.Status, target) {
		h.notifier.Notify(ctx, notify.Failure("order", "update_status", id, "invalid status transition"))
		return h.fail(apperr.ErrInvalidTransition)
	}

	if err := h.repo.UpdateStatus(ctx, id, target); err != nil {
		h.notifier.Notify(ctx, notify.Failure("order", "update_status", id, "order status could not be updated"))
		return h.fail(err)
	}
	current.Status = target
	h.notifier.Notify(ctx, notify.Success("order", "update_status", id, "order status updated to "+string(target)))
	return c.JSON(http.StatusOK, current)
}

func (h *Handler) adminDelete(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	if err := h.repo.Delete(ctx, id); err != nil {
		h.notifier.Notify(ctx, notify.Failure("order", "delete", id, "order could not be deleted"))
		return h.fail(err)
	}
	h.notifier.Notify(ctx, notify.Success("order", "delete", id, "order deleted"))
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) fail(err error) error {
	info := h.mapper.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

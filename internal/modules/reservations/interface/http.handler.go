package transport

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"addisKitchen/internal/modules/reservations/domain"
	"addisKitchen/internal/shared/apperr"
	"addisKitchen/internal/shared/httputil"
	"addisKitchen/internal/shared/notify"
)

// Repository is the storage surface the reservation handlers depend on.
type Repository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	List(ctx context.Context) ([]domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	repo     Repository
	notifier notify.Notifier
	mapper   *httputil.ErrorMapper
}

func NewHandler(repo Repository, notifier notify.Notifier) *Handler {
	return &Handler{repo: repo, notifier: notifier, mapper: httputil.NewErrorMapper()}
}

func (h *Handler) Register(e *echo.Echo, admin *echo.Group) {
	e.POST("/api/reservations", h.book)

	admin.GET("/reservations", h.adminList)
	admin.PUT("/reservations/:id/status", h.adminUpdateStatus)
	admin.DELETE("/reservations/:id", h.adminDelete)
}

func (h *Handler) book(c echo.Context) error {
	var req domain.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	ctx := c.Request().Context()
	if err := req.Validate(); err != nil {
		h.notifier.Notify(ctx, notify.Failure("reservation", "create", "", err.Error()))
		return h.fail(err)
	}

	res := domain.NewReservation(req)
	if err := h.repo.Create(ctx, res); err != nil {
		h.notifier.Notify(ctx, notify.Failure("reservation", "create", res.ID, "reservation could not be saved"))
		return h.fail(err)
	}
	h.notifier.Notify(ctx, notify.Success("reservation", "create", res.ID, "table reservation confirmed"))
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) adminList(c echo.Context) error {
	reservations, err := h.repo.List(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"reservations": reservations})
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
		h.notifier.Notify(ctx, notify.Failure("reservation", "update_status", id, "unknown status "+req.Status))
		return h.fail(apperr.Validation("unknown status %q", req.Status))
	}

	current, err := h.repo.Get(ctx, id)
	if err != nil {
		h.notifier.Notify(ctx, notify.Failure("reservation", "update_status", id, "reservation could not be loaded"))
		return h.fail(err)
	}
	if !domain.CanTransition(current.Status, target) {
		h.notifier.Notify(ctx, notify.Failure("reservation", "update_status", id, "invalid status transition"))
		return h.fail(apperr.ErrInvalidTransition)
	}

	if err := h.repo.UpdateStatus(ctx, id, target); err != nil {
		h.notifier.Notify(ctx, notify.Failure("reservation", "update_status", id, "reservation status could not be updated"))
		return h.fail(err)
	}
	current.Status = target
	h.notifier.Notify(ctx, notify.Success("reservation", "update_status", id, "reservation status updated to "+string(target)))
	return c.JSON(http.StatusOK, current)
}

func (h *Handler) adminDelete(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	if err := h.repo.Delete(ctx, id); err != nil {
		h.notifier.Notify(ctx, notify.Failure("reservation", "delete", id, "reservation could not be deleted"))
		return h.fail(err)
	}
	h.notifier.Notify(ctx, notify.Success("reservation", "delete", id, "reservation deleted"))
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) fail(err error) error {
	info := h.mapper.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

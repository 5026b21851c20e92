package transport

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"addisKitchen/internal/modules/messages/domain"
	"addisKitchen/internal/shared/apperr"
	"addisKitchen/internal/shared/httputil"
	"addisKitchen/internal/shared/notify"
)

// Repository is the storage surface the message handlers depend on.
type Repository interface {
	Create(ctx context.Context, msg *domain.Message) error
	List(ctx context.Context) ([]domain.Message, error)
	Get(ctx context.Context, id string) (*domain.Message, error)
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
	e.POST("/api/messages", h.contact)

	admin.GET("/messages", h.adminList)
	admin.PUT("/messages/:id/status", h.adminSetStatus)
	admin.POST("/messages/:id/toggle", h.adminToggle)
	admin.DELETE("/messages/:id", h.adminDelete)
}

func (h *Handler) contact(c echo.Context) error {
	var req domain.ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	ctx := c.Request().Context()
	if err := req.Validate(); err != nil {
		h.notifier.Notify(ctx, notify.Failure("message", "create", "", err.Error()))
		return h.fail(err)
	}

	msg := domain.NewMessage(req)
	if err := h.repo.Create(ctx, msg); err != nil {
		h.notifier.Notify(ctx, notify.Failure("message", "create", msg.ID, "message could not be saved"))
		return h.fail(err)
	}
	h.notifier.Notify(ctx, notify.Success("message", "create", msg.ID, "message received"))
	return c.JSON(http.StatusCreated, msg)
}

func (h *Handler) adminList(c echo.Context) error {
	messages, err := h.repo.List(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"messages": messages})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) adminSetStatus(c echo.Context) error {
	var req statusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	id := c.Param("id")
	target := domain.ParseStatus(req.Status)
	if target == "" {
		h.notifier.Notify(c.Request().Context(), notify.Failure("message", "update_status", id, "unknown status "+req.Status))
		return h.fail(apperr.Validation("unknown status %q", req.Status))
	}
	return h.setStatus(c, id, target)
}

// adminToggle flips the read state without the client naming it.
func (h *Handler) adminToggle(c echo.Context) error {
	id := c.Param("id")
	current, err := h.repo.Get(c.Request().Context(), id)
	if err != nil {
		h.notifier.Notify(c.Request().Context(), notify.Failure("message", "update_status", id, "message could not be loaded"))
		return h.fail(err)
	}
	return h.setStatus(c, id, current.Status.Toggle())
}

func (h *Handler) setStatus(c echo.Context, id string, target domain.Status) error {
	ctx := c.Request().Context()
	if err := h.repo.UpdateStatus(ctx, id, target); err != nil {
		h.notifier.Notify(ctx, notify.Failure("message", "update_status", id, "message status could not be updated"))
		return h.fail(err)
	}
	h.notifier.Notify(ctx, notify.Success("message", "update_status", id, "message marked as "+string(target)))

	msg, err := h.repo.Get(ctx, id)
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, msg)
}

func (h *Handler) adminDelete(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	if err := h.repo.Delete(ctx, id); err != nil {
		h.notifier.Notify(ctx, notify.Failure("message", "delete", id, "message could not be deleted"))
		return h.fail(err)
	}
	h.notifier.Notify(ctx, notify.Success("message", "delete", id, "message deleted"))
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) fail(err error) error {
	info := h.mapper.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

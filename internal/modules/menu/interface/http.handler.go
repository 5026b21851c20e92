package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lucsky/cuid"

	"addisKitchen/internal/modules/menu/domain"
	"addisKitchen/internal/shared/httputil"
	"addisKitchen/internal/shared/notify"
)

// Repository is the storage surface the menu handlers depend on.
type Repository interface {
	ListCategories(ctx context.Context) ([]domain.MenuCategory, error)
	ListAvailableItems(ctx context.Context) ([]domain.MenuItem, error)
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	GetItem(ctx context.Context, id string) (*domain.MenuItem, error)
	CreateItem(ctx context.Context, item *domain.MenuItem) error
	UpdateItem(ctx context.Context, item *domain.MenuItem) error
	DeleteItem(ctx context.Context, id string) error
}

// Handler serves the public menu view and the admin menu CRUD.
type Handler struct {
	repo     Repository
	notifier notify.Notifier
	mapper   *httputil.ErrorMapper
}

func NewHandler(repo Repository, notifier notify.Notifier) *Handler {
	return &Handler{repo: repo, notifier: notifier, mapper: httputil.NewErrorMapper()}
}

func (h *Handler) Register(e *echo.Echo, admin *echo.Group) {
	e.GET("/api/menu", h.menu)
	e.GET("/api/categories", h.categories)

	admin.GET("/menu-items", h.adminList)
	admin.POST("/menu-items", h.adminCreate)
	admin.PUT("/menu-items/:id", h.adminUpdate)
	admin.DELETE("/menu-items/:id", h.adminDelete)
}

// menu applies the filter engine over the available catalog. Query params:
// q (search term), category (category id), vegetarian, spicy.
func (h *Handler) menu(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.repo.ListCategories(ctx)
	if err != nil {
		return h.fail(err)
	}
	items, err := h.repo.ListAvailableItems(ctx)
	if err != nil {
		return h.fail(err)
	}

	criteria := domain.Criteria{
		Search:         c.QueryParam("q"),
		CategoryID:     c.QueryParam("category"),
		VegetarianOnly: boolParam(c.QueryParam("vegetarian")),
		SpicyOnly:      boolParam(c.QueryParam("spicy")),
	}
	groups := domain.Filter(items, categories, criteria)

	return c.JSON(http.StatusOK, map[string]any{
		"groups": groups,
	})
}

func (h *Handler) categories(c echo.Context) error {
	categories, err := h.repo.ListCategories(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"categories": categories})
}

func (h *Handler) adminList(c echo.Context) error {
	items, err := h.repo.ListItems(c.Request().Context())
	if err != nil {
		return h.fail(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) adminCreate(c echo.Context) error {
	var item domain.MenuItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	item.ID = cuid.New()
	if item.Ingredients == nil {
		item.Ingredients = []string{}
	}
	ctx := c.Request().Context()
	if err := item.Validate(); err != nil {
		h.notifier.Notify(ctx, notify.Failure("menu_item", "create", item.ID, err.Error()))
		return h.fail(err)
	}

	if err := h.repo.CreateItem(ctx, &item); err != nil {
		h.notifier.Notify(ctx, notify.Failure("menu_item", "create", item.ID, "menu item could not be saved"))
		return h.fail(err)
	}
	h.notifier.Notify(ctx, notify.Success("menu_item", "create", item.ID, "menu item added"))
	return c.JSON(http.StatusCreated, item)
}

func (h *Handler) adminUpdate(c echo.Context) error {
	var item domain.MenuItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	item.ID = c.Param("id")
	if item.Ingredients == nil {
		item.Ingredients = []string{}
	}
	ctx := c.Request().Context()
	if err := item.Validate(); err != nil {
		h.notifier.Notify(ctx, notify.Failure("menu_item", "update", item.ID, err.Error()))
		return h.fail(err)
	}

	if err := h.repo.UpdateItem(ctx, &item); err != nil {
		h.notifier.Notify(ctx, notify.Failure("menu_item", "update", item.ID, "menu item could not be updated"))
		return h.fail(err)
	}
	h.notifier.Notify(ctx, notify.Success("menu_item", "update", item.ID, "menu item updated"))
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) adminDelete(c echo.Context) error {
	id := c.Param("id")
	ctx := c.Request().Context()
	if err := h.repo.DeleteItem(ctx, id); err != nil {
		h.notifier.Notify(ctx, notify.Failure("menu_item", "delete", id, "menu item could not be deleted"))
		return h.fail(err)
	}
	h.notifier.Notify(ctx, notify.Success("menu_item", "delete", id, "menu item deleted"))
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) fail(err error) error {
	info := h.mapper.Map(err)
	return echo.NewHTTPError(info.Status, info.Message)
}

func boolParam(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

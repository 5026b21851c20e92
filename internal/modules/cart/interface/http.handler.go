package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	cart "addisKitchen/internal/modules/cart/domain"
	"addisKitchen/internal/modules/cart/infrastructure"
	menudomain "addisKitchen/internal/modules/menu/domain"
	"addisKitchen/internal/shared/httputil"
)

// CookieName identifies the browsing session that owns a cart.
const CookieName = "cart_session"

// ItemLookup resolves a menu item by id. Prices are captured server-side from
// the catalog, never trusted from the client.
type ItemLookup func(c echo.Context, id string) (*menudomain.MenuItem, error)

// Handler serves the session cart endpoints.
type Handler struct {
	store  *infrastructure.SessionStore
	lookup ItemLookup
	mapper *httputil.ErrorMapper
}

func NewHandler(store *infrastructure.SessionStore, lookup ItemLookup) *Handler {
	return &Handler{store: store, lookup: lookup, mapper: httputil.NewErrorMapper()}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/api/cart", h.view)
	e.POST("/api/cart/items", h.add)
	e.PUT("/api/cart/items/:itemID", h.updateQuantity)
	e.DELETE("/api/cart/items/:itemID", h.remove)
}

type cartView struct {
	Lines     []cart.Line `json:"lines"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"itemCount"`
}

func snapshot(c *cart.Cart) cartView {
	return cartView{Lines: c.Lines(), Total: c.Total(), ItemCount: c.ItemCount()}
}

func (h *Handler) view(c echo.Context) error {
	token := sessionToken(c)
	view := cartView{Lines: []cart.Line{}}
	if token != "" {
		h.store.Peek(token, func(crt *cart.Cart) {
			view = snapshot(crt)
		})
	}
	if view.Lines == nil {
		view.Lines = []cart.Line{}
	}
	return c.JSON(http.StatusOK, view)
}

type addRequest struct {
	ItemID string `json:"itemId"`
}

func (h *Handler) add(c echo.Context) error {
	var req addRequest
	if err := c.Bind(&req); err != nil || req.ItemID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "itemId is required")
	}

	item, err := h.lookup(c, req.ItemID)
	if err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}
	if !item.IsAvailable {
		return echo.NewHTTPError(http.StatusConflict, "item is not available")
	}

	var view cartView
	token := h.store.WithCart(sessionToken(c), func(crt *cart.Cart) {
		crt.Add(item.ID, item.Name, item.Price)
		view = snapshot(crt)
	})
	setSessionCookie(c, token)
	return c.JSON(http.StatusOK, view)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateQuantity(c echo.Context) error {
	var req quantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	// A missing session behaves like the absent-id no-op: an empty cart.
	view := cartView{Lines: []cart.Line{}}
	token := sessionToken(c)
	if token != "" {
		h.store.Peek(token, func(crt *cart.Cart) {
			crt.UpdateQuantity(c.Param("itemID"), req.Quantity)
			view = snapshot(crt)
		})
	}
	if view.Lines == nil {
		view.Lines = []cart.Line{}
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) remove(c echo.Context) error {
	view := cartView{Lines: []cart.Line{}}
	token := sessionToken(c)
	if token != "" {
		h.store.Peek(token, func(crt *cart.Cart) {
			crt.Remove(c.Param("itemID"))
			view = snapshot(crt)
		})
	}
	if view.Lines == nil {
		view.Lines = []cart.Line{}
	}
	return c.JSON(http.StatusOK, view)
}

func sessionToken(c echo.Context) string {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

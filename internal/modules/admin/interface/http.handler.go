package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"addisKitchen/internal/modules/admin/application/usecase"
	"addisKitchen/internal/shared/auth"
	"addisKitchen/internal/shared/httputil"
)

const claimsContextKey = "adminClaims"

// Handler serves the admin session endpoints.
type Handler struct {
	signIn *usecase.SignInUseCase
	mapper *httputil.ErrorMapper
}

func NewHandler(signIn *usecase.SignInUseCase) *Handler {
	return &Handler{
		signIn: signIn,
		mapper: httputil.NewErrorMapper().
			WithMapping(usecase.ErrBadCredentials, http.StatusUnauthorized, "invalid username or password"),
	}
}

// Register mounts the public login route and the guarded session probe.
func (h *Handler) Register(e *echo.Echo, admin *echo.Group) {
	e.POST("/admin/api/login", h.login)
	admin.GET("/me", h.me)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	out, err := h.signIn.Execute(c.Request().Context(), usecase.SignInInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		info := h.mapper.Map(err)
		return echo.NewHTTPError(info.Status, info.Message)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"token":    out.Token,
		"username": out.Username,
	})
}

func (h *Handler) me(c echo.Context) error {
	claims, ok := c.Get(claimsContextKey).(*auth.Claims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"username": claims.Username,
		"role":     claims.Role,
	})
}

// RequireAuth guards a route group with bearer-token validation. Validated
// claims are stored on the echo context for downstream handlers.
func RequireAuth(validator auth.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := auth.ExtractBearerToken(c.Request())
			claims, err := validator.Validate(token)
			if err != nil {
				slog.Warn("admin request rejected",
					slog.String("path", c.Path()),
					slog.Any("error", err),
				)
				if errors.Is(err, auth.ErrMissingToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

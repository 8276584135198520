package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/purplemerit/account-service/internal/api/metrics"
	"github.com/purplemerit/account-service/internal/core/domain"
	"github.com/purplemerit/account-service/internal/core/ports"
)

// AdminHandler exposes the user lookup and the admin-only listing and
// activation endpoints.
type AdminHandler struct {
	userService  ports.UserService
	adminService ports.AdminService
}

func NewAdminHandler(userService ports.UserService, adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{userService: userService, adminService: adminService}
}

// GetUser returns a single user record without the password hash.
//
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  getUserResponse
// @Failure      404  {object}  messageResponse
// @Router       /user/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.userService.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, getUserResponse{User: toUserDetail(user)})
}

// ListUsers returns one page of non-admin users with pagination totals.
// page and limit fall back to 1/10 when absent or non-numeric.
//
// @Summary      List users (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {object}  listUsersResponse
// @Failure      403    {object}  messageResponse
// @Router       /users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		page = 0 // service applies the default
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		limit = 0
	}

	result, err := h.adminService.ListUsers(c.Request().Context(), role, page, limit)
	if err != nil {
		return err
	}

	users := make([]userDetail, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, toUserDetail(u))
	}

	return c.JSON(http.StatusOK, listUsersResponse{
		Users:       users,
		TotalUsers:  result.TotalUsers,
		CurrentPage: result.CurrentPage,
		TotalPages:  result.TotalPages,
	})
}

// SetStatus activates or deactivates the target user.
//
// @Summary      Set user status (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "User ID"
// @Param        body  body      setStatusRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /user/{id}/status [put]
func (h *AdminHandler) SetStatus(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	status := domain.Status(req.Status)
	if err := h.adminService.SetStatus(c.Request().Context(), role, c.Param("id"), status); err != nil {
		return err
	}

	metrics.StatusUpdatesTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "User status updated successfully"})
}

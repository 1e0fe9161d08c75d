package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/securedocs/docvault/internal/core/ports"
)

// UserHandler exposes the read-only user directory.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every user, password stripped.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}  userResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponses(users))
}

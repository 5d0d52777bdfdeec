package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cartowiki/webapp/internal/api/metrics"
	"github.com/cartowiki/webapp/internal/core/ports"
)

// UserHandler handles the privilege-gated user management endpoints. All
// authorization decisions live in the service; the handler only moves the
// principal and payload across.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Get returns one account's public data.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  accountResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	account, err := h.service.GetAccount(c.Request().Context(), c.Param("id"), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// List returns all enabled accounts at or below the caller's privilege.
//
// @Summary      List visible users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	accounts, err := h.service.ListAccounts(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	users := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		users[i] = toAccountResponse(a)
	}

	return c.JSON(http.StatusOK, listUsersResponse{Users: users})
}

// Delete soft-deletes an account; its username and email stay reserved.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Request().Context(), c.Param("id"), principal); err != nil {
		return err
	}

	metrics.AccountMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "user successfully deleted"})
}

// Edit applies a partial update to an account.
//
// @Summary      Edit a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Account id"
// @Param        body  body      editUserRequest  true  "Fields to change"
// @Success      202   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Edit(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req editUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.EditAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}

	if err := h.service.EditAccount(c.Request().Context(), c.Param("id"), principal, input); err != nil {
		return err
	}

	metrics.AccountMutationsTotal.WithLabelValues("edit").Inc()
	return c.JSON(http.StatusAccepted, messageResponse{Message: "user successfully edited"})
}

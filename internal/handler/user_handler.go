package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursify/internal/model"
	"coursify/internal/service"
)

// UserHandler bundles the user HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the POST /users payload. The password is accepted in
// plaintext here and only ever stored as a hash. String fields are pointers
// so an absent field is distinguishable from an empty value; an empty value
// falls through to the field rule and gets its message.
type CreateUserRequest struct {
	Username *string `json:"username" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
	Role     string  `json:"role"`
}

// CreateUser godoc
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorsResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Missing required fields: 'username', 'email', 'password'.")
	}

	doc, err := h.svc.CreateUser(c.Request().Context(), *req.Username, *req.Email, *req.Password, model.Role(req.Role))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, doc)
}

// GetUser godoc
// @Summary Get user by id with nested relations
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid user id.")
	}
	doc, err := h.svc.GetUserDocument(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	docs, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

// DeleteUser godoc
// @Summary Delete user and everything they own
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorsResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid user id.")
	}
	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

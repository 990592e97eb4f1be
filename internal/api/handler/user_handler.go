package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/upturn/portfolio-api/internal/api/middleware"
	"github.com/upturn/portfolio-api/internal/core/domain"
	"github.com/upturn/portfolio-api/internal/core/ports"
)

// UserHandler handles user registration, listing and role management.
type UserHandler struct {
	users    ports.UserService
	validate *validator.Validate
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users, validate: validator.New()}
}

type registerResponse struct {
	InsertedID   string `json:"insertedId"`
	Acknowledged bool   `json:"acknowledged"`
}

type mutationResponse struct {
	Acknowledged  bool  `json:"acknowledged"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// Register stores a new user with role "user". Idempotent on email.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "User profile (email required)"
// @Success      200   {object}  map[string]string  "already exists"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var profile domain.Document
	if err := c.Bind(&profile); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	email, _ := profile["email"].(string)
	if err := h.validate.Var(email, "required,email"); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "a valid email is required"})
	}

	result, err := h.users.Register(c.Request().Context(), profile)
	if err != nil {
		return err
	}
	if result.AlreadyExists {
		return c.JSON(http.StatusOK, map[string]string{"message": "User already exists"})
	}

	return c.JSON(http.StatusCreated, registerResponse{
		InsertedID:   result.InsertedID,
		Acknowledged: true,
	})
}

// AdminStatus reports whether the user behind the verified token is an admin.
// The path email must match the verified claim so callers cannot probe other
// accounts.
//
// @Summary      Check admin status
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email, must equal the token's email claim"
// @Success      200    {object}  map[string]bool
// @Failure      403    {object}  map[string]string
// @Router       /users/admin/{email} [get]
func (h *UserHandler) AdminStatus(c echo.Context) error {
	email := c.Param("email")

	claimEmail, _ := c.Get(middleware.EmailContextKey).(string)
	if email != claimEmail {
		return echo.NewHTTPError(http.StatusForbidden, "Forbidden access")
	}

	isAdmin, err := h.users.IsAdmin(c.Request().Context(), email)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"admin": isAdmin})
}

// List returns every user document.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  map[string]any
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// GetByID returns a single user document, or a JSON null when the id is
// well-formed but unknown.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id (hex)"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.users.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, domain.ErrUserNotFound) {
		return c.JSON(http.StatusOK, nil)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Promote sets the user's role to admin.
//
// @Summary      Promote a user to admin
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id (hex)"
// @Success      200  {object}  mutationResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/admin/{id} [patch]
func (h *UserHandler) Promote(c echo.Context) error {
	return h.setRole(c, domain.RoleAdmin)
}

// Demote reverts the user's role to user.
//
// @Summary      Revert a user's role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id (hex)"
// @Success      200  {object}  mutationResponse
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /users/revert/{id} [patch]
func (h *UserHandler) Demote(c echo.Context) error {
	return h.setRole(c, domain.RoleUser)
}

func (h *UserHandler) setRole(c echo.Context, role string) error {
	err := h.users.SetRole(c.Request().Context(), c.Param("id"), role)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, mutationResponse{Acknowledged: true, ModifiedCount: 1})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "User not found or role unchanged"})
	case errors.Is(err, domain.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid user id"})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user role"})
	}
}

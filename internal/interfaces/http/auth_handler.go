package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-pos-api/internal/application/auth"
	"github.com/jhoicas/retail-pos-api/internal/application/dto"
	"github.com/jhoicas/retail-pos-api/internal/listview"
)

// AuthHandler maneja registro, login y administración de usuarios.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

var userListOptions = listview.Options[dto.UserResponse]{
	ID: func(u dto.UserResponse) string { return u.ID },
	Searchable: []func(dto.UserResponse) string{
		func(u dto.UserResponse) string { return u.Username },
		func(u dto.UserResponse) string { return u.Email },
		func(u dto.UserResponse) string { return u.FirstName + " " + u.LastName },
	},
	Filters: map[string]func(dto.UserResponse, string) bool{
		"role": func(u dto.UserResponse, v string) bool { return u.Role == v },
		"is_active": func(u dto.UserResponse, v string) bool {
			return (v == "true") == u.IsActive
		},
	},
	Sorters: map[string]func(a, b dto.UserResponse) int{
		"username":   func(a, b dto.UserResponse) int { return compareFolded(a.Username, b.Username) },
		"created_at": func(a, b dto.UserResponse) int { return a.CreatedAt.Compare(b.CreatedAt) },
	},
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login godoc
// @Summary      Iniciar sesión por username o email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username (o email) y password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuarios
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	items, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	page, meta := pageOf(items, listParams(c, "role", "is_active"), userListOptions)
	return c.JSON(dto.UserListResponse{Items: page, Meta: meta})
}

// DeactivateUser godoc
// @Summary      Desactivar usuario
// @Tags         auth
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/deactivate [post]
func (h *AuthHandler) DeactivateUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeactivateUser(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

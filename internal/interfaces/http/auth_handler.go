package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bhojansetu/bhojan-setu-api/internal/application/auth"
	"github.com/bhojansetu/bhojan-setu-api/internal/application/dto"
)

// AuthHandler handles sign-up, login and the caller's own profile.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Register a vendor or supplier
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "Account and profile data"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Signup(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Email/password sign-in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Get own profile
// @Tags         profile
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProfileResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/profiles/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.GetProfile(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "profile not found"})
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Tags         profile
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Fields to update"
// @Success      200   {object}  dto.ProfileResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/profiles/me [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if !parseBody(c, &in) {
		return nil
	}
	out, err := h.uc.UpdateProfile(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "profile not found"})
	}
	return c.JSON(out)
}

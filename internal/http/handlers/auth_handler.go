package handlers

import (
	"github.com/gofiber/fiber/v2"

	"gpstore/internal/domain"
	applog "gpstore/internal/log"
	"gpstore/internal/store"
	"gpstore/internal/validate"
)

type AuthHandler struct {
	Store *store.Store
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// publicUser strips the credential before a user record leaves the API.
func publicUser(u domain.User) domain.User {
	u.Password = ""
	return u
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
	}
	if _, ok := validate.Email(req.Email); !ok {
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	u := h.Store.Login(req.Email, req.Password)
	if u == nil {
		// One generic message for unknown email and wrong password alike.
		applog.Security(c, "auth.login.fail", map[string]any{"email": req.Email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"user": u.ID})
	return c.JSON(publicUser(*u))
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "bad request"})
	}
	name, ok := validate.Name(req.Name)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}
	email, ok := validate.Email(req.Email)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid email"})
	}
	if !validate.Password(req.Password) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "password must be 6-72 characters"})
	}

	res := h.Store.Signup(name, email, req.Password)
	if !res.Success {
		return c.Status(fiber.StatusConflict).JSON(res)
	}
	applog.Audit(c, "auth.signup", map[string]any{"email": email})
	return c.Status(fiber.StatusCreated).JSON(res)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Store.Logout()
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"ok": true})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u := h.Store.User()
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not logged in"})
	}
	return c.JSON(publicUser(*u))
}

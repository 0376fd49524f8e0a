package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/middleware"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/models"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/services/marketplace"
	"github.com/Windi-Fikriyansyah/platfrom_be_desain/internal/utils"
)

type AuthHandler struct {
	Svc          *marketplace.Service
	JWTSecret    string
	Expires      int
	CookieSecure bool
	Log          *slog.Logger
}

type RegisterReq struct {
	Username        string `json:"username" validate:"required,min=3,max=20"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Role            string `json:"role" validate:"required"` // client / freelancer
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	if actorOf(c).Authenticated() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"message": "Already logged in",
		})
	}

	var req RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "invalid body",
		})
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	errs := validateReq(&req)
	role, err := models.ParseRole(req.Role)
	if err != nil && !errs.Has("role") {
		errs.Add("role", "Choose client or freelancer")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	u, err := h.Svc.Register(marketplace.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     role,
	})
	switch {
	case errors.Is(err, marketplace.ErrUsernameTaken):
		errs.Add("username", marketplace.ErrUsernameTaken.Message)
		return validationFail(c, errs)
	case errors.Is(err, marketplace.ErrEmailTaken):
		errs.Add("email", marketplace.ErrEmailTaken.Message)
		return validationFail(c, errs)
	case err != nil:
		return fail(c, h.Log, err)
	}

	if err := h.startSession(c, u); err != nil {
		return fail(c, h.Log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Registration successful! Your account has been created.",
		"data":    fiber.Map{"user": u},
	})
}

type LoginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid body",
		})
	}

	req.Email = strings.TrimSpace(req.Email)
	if errs := validateReq(&req); len(errs) > 0 {
		return validationFail(c, errs)
	}

	u, err := h.Svc.Authenticate(req.Email, req.Password)
	if err != nil {
		return fail(c, h.Log, err)
	}

	if err := h.startSession(c, u); err != nil {
		return fail(c, h.Log, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Welcome back, " + u.Username + "!",
		"data":    fiber.Map{"user": u},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.CookieSecure,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "You have been logged out successfully.",
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	u, err := h.Svc.Me(actorOf(c))
	if err != nil {
		return fail(c, h.Log, err)
	}
	return success(c, fiber.StatusOK, "", u)
}

func (h *AuthHandler) startSession(c *fiber.Ctx, u models.User) error {
	token, err := utils.SignJWT(h.JWTSecret, int64(u.ID), u.Role.String(), h.Expires)
	if err != nil {
		return fmt.Errorf("sign session token for user %d: %w", u.ID, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.TokenCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   h.CookieSecure,
		SameSite: "Lax",
		MaxAge:   h.Expires * 60,
	})
	return nil
}

package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/harsh-kumbhar/lifelog/internal/services"
)

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}
	credentials.Email = strings.TrimSpace(credentials.Email)
	return credentials, nil
}

func (handler *Handler) respondAuthError(c *fiber.Ctx, status int, message string) error {
	if strings.HasPrefix(c.Path(), "/api/auth/") && !acceptsJSON(c) && !isHTMX(c) {
		flash := FlashPayload{AuthError: message}
		switch c.Path() {
		case "/api/auth/register":
			flash.RegisterEmail = normalizeLoginEmail(c.FormValue("email"))
			handler.setFlashCookie(c, flash)
			return c.Redirect("/register", fiber.StatusSeeOther)
		default:
			flash.LoginEmail = normalizeLoginEmail(c.FormValue("email"))
			handler.setFlashCookie(c, flash)
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
	}
	return apiError(c, status, message)
}

// SetupStatus reports whether the instance already has its account, so the
// first-launch flow can decide between register and login.
func (handler *Handler) SetupStatus(c *fiber.Ctx) error {
	handler.ensureDependencies()
	hasAccount, err := handler.authService.HasAccount()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check setup status")
	}
	return c.JSON(fiber.Map{"has_account": hasAccount})
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}
	if validationError := validateRegistrationCredentials(credentials); validationError != "" {
		return handler.respondAuthError(c, fiber.StatusBadRequest, validationError)
	}

	handler.ensureDependencies()
	user, err := handler.authService.Register(credentials.Email, credentials.Password, credentials.DisplayName, credentials.Timezone)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRegistrationClosed):
			return handler.respondAuthError(c, fiber.StatusForbidden, "registration is closed")
		case errors.Is(err, services.ErrEmailTaken):
			return handler.respondAuthError(c, fiber.StatusConflict, "email already exists")
		case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrWeakPassword):
			return handler.respondAuthError(c, fiber.StatusBadRequest, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true})
	}
	return redirectToPath(c, "/dashboard")
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	user, err := handler.authService.Authenticate(credentials.Email, credentials.Password)
	if err != nil {
		return handler.respondAuthError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, credentials.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return redirectOrJSON(c, "/dashboard")
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	if isHTMX(c) {
		c.Set("HX-Redirect", "/login")
		return c.SendStatus(fiber.StatusOK)
	}
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.NewPassword != input.ConfirmPassword {
		return handler.respondSettingsError(c, fiber.StatusBadRequest, "passwords do not match")
	}

	handler.ensureDependencies()
	if err := handler.authService.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return handler.respondSettingsError(c, fiber.StatusUnauthorized, "current password is incorrect")
		case errors.Is(err, services.ErrWeakPassword):
			return handler.respondSettingsError(c, fiber.StatusBadRequest, "password must be at least 8 characters")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to change password")
		}
	}

	if acceptsJSON(c) || isHTMX(c) {
		return c.JSON(fiber.Map{"ok": true})
	}
	handler.setFlashCookie(c, FlashPayload{SettingsSuccess: "password updated"})
	return c.Redirect("/settings", fiber.StatusSeeOther)
}

func (handler *Handler) respondSettingsError(c *fiber.Ctx, status int, message string) error {
	if !acceptsJSON(c) && !isHTMX(c) {
		handler.setFlashCookie(c, FlashPayload{SettingsError: message})
		return c.Redirect("/settings", fiber.StatusSeeOther)
	}
	return apiError(c, status, message)
}

package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	handled, err := handler.redirectAuthenticatedUserIfPresent(c)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	handler.ensureDependencies()
	hasAccount, err := handler.authService.HasAccount()
	if err == nil && !hasAccount {
		return c.Redirect("/register", fiber.StatusSeeOther)
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "login", fiber.Map{
		"Title":      "Sign in",
		"AuthError":  flash.AuthError,
		"LoginEmail": flash.LoginEmail,
	})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	handled, err := handler.redirectAuthenticatedUserIfPresent(c)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	handler.ensureDependencies()
	hasAccount, err := handler.authService.HasAccount()
	if err == nil && hasAccount {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	flash := handler.popFlashCookie(c)
	return handler.render(c, "register", fiber.Map{
		"Title":         "Create your account",
		"AuthError":     flash.AuthError,
		"RegisterEmail": flash.RegisterEmail,
	})
}

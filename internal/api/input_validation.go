package api

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const dateInputLayout = "2006-01-02"

var errInvalidDate = errors.New("invalid date")

// parseDateValue parses a YYYY-MM-DD string in the given location. An empty
// value means "today".
func parseDateValue(raw string, location *time.Location, now time.Time) (time.Time, error) {
	if location == nil {
		location = time.UTC
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return now.In(location), nil
	}
	parsed, err := time.ParseInLocation(dateInputLayout, trimmed, location)
	if err != nil {
		return time.Time{}, errInvalidDate
	}
	return parsed, nil
}

func (handler *Handler) parseDateQuery(c *fiber.Ctx, location *time.Location) (time.Time, error) {
	return parseDateValue(c.Query("date"), location, time.Now())
}

func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}

func normalizeLoginEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func validateRegistrationCredentials(credentials credentialsInput) string {
	if normalizeLoginEmail(credentials.Email) == "" {
		return "invalid email"
	}
	if len(credentials.Password) < 8 {
		return "password must be at least 8 characters"
	}
	return ""
}

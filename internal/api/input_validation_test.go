package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestParseDateValue(t *testing.T) {
	t.Parallel()

	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	now := time.Date(2026, 3, 4, 22, 30, 0, 0, time.UTC)

	t.Run("empty value means today in the user's zone", func(t *testing.T) {
		got, err := parseDateValue("", kolkata, now)
		if err != nil {
			t.Fatalf("parseDateValue: %v", err)
		}
		// 22:30 UTC is already the next calendar day in Kolkata.
		if got.In(kolkata).Format(dateInputLayout) != "2026-03-05" {
			t.Fatalf("expected 2026-03-05 in Kolkata, got %s", got.In(kolkata).Format(dateInputLayout))
		}
	})

	t.Run("explicit date parses in location", func(t *testing.T) {
		got, err := parseDateValue("2026-03-04", kolkata, now)
		if err != nil {
			t.Fatalf("parseDateValue: %v", err)
		}
		if got.Location() != kolkata {
			t.Fatalf("expected Kolkata location, got %v", got.Location())
		}
		if got.Year() != 2026 || got.Month() != time.March || got.Day() != 4 {
			t.Fatalf("unexpected date %v", got)
		}
	})

	t.Run("surrounding whitespace is tolerated", func(t *testing.T) {
		if _, err := parseDateValue("  2026-03-04  ", kolkata, now); err != nil {
			t.Fatalf("parseDateValue: %v", err)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, err := parseDateValue("04/03/2026", kolkata, now); err == nil {
			t.Fatal("expected error for non ISO date")
		}
	})

	t.Run("nil location defaults to UTC", func(t *testing.T) {
		got, err := parseDateValue("2026-03-04", nil, now)
		if err != nil {
			t.Fatalf("parseDateValue: %v", err)
		}
		if got.Location() != time.UTC {
			t.Fatalf("expected UTC, got %v", got.Location())
		}
	})
}

func TestParseUintParam(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/items/:id", func(c *fiber.Ctx) error {
		id, err := parseUintParam(c, "id")
		if err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{name: "positive id accepted", path: "/items/42", status: http.StatusOK},
		{name: "zero rejected", path: "/items/0", status: http.StatusBadRequest},
		{name: "negative rejected", path: "/items/-3", status: http.StatusBadRequest},
		{name: "non numeric rejected", path: "/items/abc", status: http.StatusBadRequest},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, test.path, nil)

			resp, err := app.Test(req, -1)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != test.status {
				t.Fatalf("GET %s = %d, want %d", test.path, resp.StatusCode, test.status)
			}
		})
	}
}

func TestNormalizeLoginEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercases and trims", raw: "  User@Example.COM ", want: "user@example.com"},
		{name: "empty stays empty", raw: "", want: ""},
		{name: "not an address", raw: "nope", want: ""},
		{name: "missing domain", raw: "user@", want: ""},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := normalizeLoginEmail(test.raw); got != test.want {
				t.Fatalf("normalizeLoginEmail(%q) = %q, want %q", test.raw, got, test.want)
			}
		})
	}
}

func TestValidateRegistrationCredentials(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials pass", func(t *testing.T) {
		message := validateRegistrationCredentials(credentialsInput{
			Email:    "user@example.com",
			Password: "longenough",
		})
		if message != "" {
			t.Fatalf("expected no validation message, got %q", message)
		}
	})

	t.Run("bad email flagged", func(t *testing.T) {
		message := validateRegistrationCredentials(credentialsInput{
			Email:    "not-an-email",
			Password: "longenough",
		})
		if message == "" {
			t.Fatal("expected validation message for bad email")
		}
	})

	t.Run("short password flagged", func(t *testing.T) {
		message := validateRegistrationCredentials(credentialsInput{
			Email:    "user@example.com",
			Password: "short",
		})
		if message == "" {
			t.Fatal("expected validation message for short password")
		}
	})
}

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestSanitizeRedirectPath(t *testing.T) {
	t.Parallel()

	fallback := "/login"

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty uses fallback", raw: "", want: fallback},
		{name: "absolute url blocked", raw: "https://evil.example", want: fallback},
		{name: "protocol relative blocked", raw: "//evil.example", want: fallback},
		{name: "path without leading slash blocked", raw: "dashboard", want: fallback},
		{name: "valid local path kept", raw: "/dashboard", want: "/dashboard"},
		{name: "valid local path with query kept", raw: "/workouts?date=2026-03-04", want: "/workouts?date=2026-03-04"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got := sanitizeRedirectPath(test.raw, fallback)
			if got != test.want {
				t.Fatalf("sanitizeRedirectPath(%q) = %q, want %q", test.raw, got, test.want)
			}
		})
	}
}

func TestAPIErrorContentNegotiation(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return apiError(c, fiber.StatusUnprocessableEntity, "food not found & <unlisted>")
	})

	t.Run("plain request gets JSON error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/fail", nil)

		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnprocessableEntity {
			t.Fatalf("expected status 422, got %d", resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), `"error"`) {
			t.Fatalf("expected JSON error body, got %q", string(body))
		}
	})

	t.Run("htmx request gets escaped fragment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/fail", nil)
		req.Header.Set("HX-Request", "true")

		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		text := string(body)
		if !strings.Contains(text, `class="status-error"`) {
			t.Fatalf("expected status-error fragment, got %q", text)
		}
		if strings.Contains(text, "<unlisted>") {
			t.Fatalf("expected message to be HTML-escaped, got %q", text)
		}
	})
}

func TestRedirectOrJSON(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Post("/done", func(c *fiber.Ctx) error {
		return redirectOrJSON(c, "/habits")
	})

	t.Run("browser form post redirects", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/done", nil)

		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusSeeOther {
			t.Fatalf("expected status 303, got %d", resp.StatusCode)
		}
		if location := resp.Header.Get("Location"); location != "/habits" {
			t.Fatalf("expected redirect to /habits, got %q", location)
		}
	})

	t.Run("htmx post gets HX-Redirect header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/done", nil)
		req.Header.Set("HX-Request", "true")

		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
		if target := resp.Header.Get("HX-Redirect"); target != "/habits" {
			t.Fatalf("expected HX-Redirect /habits, got %q", target)
		}
	})

	t.Run("json client gets ok body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/done", nil)
		req.Header.Set("Accept", "application/json")

		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}
		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), `"ok":true`) {
			t.Fatalf("expected ok body, got %q", string(body))
		}
	})
}

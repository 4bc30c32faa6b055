package api

import (
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"github.com/harsh-kumbhar/lifelog/internal/db"
	"github.com/harsh-kumbhar/lifelog/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	templates    map[string]*template.Template
	partials     map[string]*template.Template

	repositories     *db.Repositories
	authService      *services.AuthService
	catalogService   *services.CatalogService
	workoutService   *services.WorkoutService
	nutritionService *services.NutritionService
	studyService     *services.StudyService
	habitService     *services.HabitService
	metricsService   *services.MetricsService
	journalService   *services.JournalService
	quoteService     *services.QuoteService
	rollupService    *services.RollupService
	snapshotService  *services.SnapshotService
}

type FlashPayload struct {
	AuthError       string `json:"auth_error,omitempty"`
	SettingsError   string `json:"settings_error,omitempty"`
	SettingsSuccess string `json:"settings_success,omitempty"`
	LoginEmail      string `json:"login_email,omitempty"`
	RegisterEmail   string `json:"register_email,omitempty"`
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if location == nil {
		location = time.Local
	}

	funcMap := template.FuncMap{
		"formatDate": func(value time.Time, layout string) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"formatFloat": func(value float64) string {
			return fmt.Sprintf("%.1f", value)
		},
		"floatOrDash": func(value *float64) string {
			if value == nil {
				return "—"
			}
			return fmt.Sprintf("%.1f", *value)
		},
		"intOrDash": func(value *int) string {
			if value == nil {
				return "—"
			}
			return fmt.Sprintf("%d", *value)
		},
		"isActiveRoute": func(currentPath string, route string) bool {
			path := strings.TrimSpace(currentPath)
			if path == "" {
				return route == "/"
			}
			if route == "/" {
				return path == "/" || strings.HasPrefix(path, "/?")
			}
			return path == route || strings.HasPrefix(path, route+"?") || strings.HasPrefix(path, route+"/")
		},
		"toJSON": func(value any) template.JS {
			serialized, _ := json.Marshal(value)
			return template.JS(serialized)
		},
	}

	templates := make(map[string]*template.Template)
	pages := []string{
		"login",
		"register",
		"dashboard",
		"workouts",
		"nutrition",
		"academics",
		"habits",
		"report",
		"settings",
	}
	for _, page := range pages {
		templatePath := filepath.Join(templateDir, page+".html")
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			templatePath,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}

	partials := make(map[string]*template.Template)
	partialFiles := []string{"habit_list_partial.html"}
	for _, partial := range partialFiles {
		name := strings.TrimSuffix(partial, ".html")
		parsed, err := template.New(name).Funcs(funcMap).ParseFiles(filepath.Join(templateDir, partial))
		if err != nil {
			return nil, fmt.Errorf("parse partial %s: %w", partial, err)
		}
		partials[name] = parsed
	}

	return &Handler{
		db:           database,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		templates:    templates,
		partials:     partials,
	}, nil
}

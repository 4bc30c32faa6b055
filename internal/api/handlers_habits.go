package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harsh-kumbhar/lifelog/internal/services"
)

// HabitView pairs a habit with its completion state for the selected day.
type HabitView struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Active        bool   `json:"active"`
	CurrentStreak int    `json:"current_streak"`
	BestStreak    int    `json:"best_streak"`
	DoneToday     bool   `json:"done_today"`
}

func (handler *Handler) buildHabitViews(userID uint, day time.Time, location *time.Location) ([]HabitView, error) {
	habits, err := handler.habitService.ListHabits(userID)
	if err != nil {
		return nil, err
	}

	views := make([]HabitView, 0, len(habits))
	for _, habit := range habits {
		done, err := handler.habitService.CompletedOn(habit.ID, day, location)
		if err != nil {
			return nil, err
		}
		views = append(views, HabitView{
			ID:            habit.ID,
			Name:          habit.Name,
			Active:        habit.Active,
			CurrentStreak: habit.CurrentStreak,
			BestStreak:    habit.BestStreak,
			DoneToday:     done,
		})
	}
	return views, nil
}

func (handler *Handler) GetHabits(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	handler.ensureDependencies()
	location := handler.userLocation(user)
	day, err := handler.parseDateQuery(c, location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	views, err := handler.buildHabitViews(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load habits")
	}
	return c.JSON(fiber.Map{"habits": views})
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	payload := habitPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.CreateHabit(user.ID, payload.Name)
	if err != nil {
		if errors.Is(err, services.ErrInvalidHabitName) {
			return apiError(c, fiber.StatusBadRequest, "habit name is required")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"habit": habit})
	}
	return redirectToPath(c, "/habits")
}

// CompleteHabit marks a habit done for a day. Completing the same day twice
// is a no-op, so retries and double-submits are safe.
func (handler *Handler) CompleteHabit(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}
	habitID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	payload := habitCompletionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	location := handler.userLocation(user)
	day, err := parseDateValue(payload.Date, location, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	habit, err := handler.habitService.RecordCompletion(user.ID, habitID, day, payload.Notes, location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrHabitNotFound):
			return apiError(c, fiber.StatusNotFound, "habit not found")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to record completion")
		}
	}

	if isHTMX(c) {
		views, err := handler.buildHabitViews(user.ID, day, location)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to load habits")
		}
		return handler.renderPartial(c, "habit_list_partial", fiber.Map{
			"Habits": views,
			"Date":   day.In(location).Format(dateInputLayout),
		})
	}
	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"habit": habit})
	}
	return redirectToPath(c, "/habits")
}

func (handler *Handler) SetHabitActive(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}
	habitID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	payload := habitActivePayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.SetActive(user.ID, habitID, payload.Active)
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return apiError(c, fiber.StatusNotFound, "habit not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update habit")
	}

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{"habit": habit})
	}
	return redirectToPath(c, "/habits")
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}
	habitID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	handler.ensureDependencies()
	if err := handler.habitService.DeleteHabit(user.ID, habitID); err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return apiError(c, fiber.StatusNotFound, "habit not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete habit")
	}
	return redirectOrJSON(c, "/habits")
}

// RecomputeHabitStreak rebuilds a habit's cached streak counters from its
// completion history. Repair endpoint for drifted counters.
func (handler *Handler) RecomputeHabitStreak(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}
	habitID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	handler.ensureDependencies()
	habit, err := handler.habitService.RecomputeStreak(user.ID, habitID, handler.userLocation(user))
	if err != nil {
		if errors.Is(err, services.ErrHabitNotFound) {
			return apiError(c, fiber.StatusNotFound, "habit not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to recompute streak")
	}
	return c.JSON(fiber.Map{"habit": habit})
}

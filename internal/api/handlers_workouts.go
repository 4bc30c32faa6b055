package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harsh-kumbhar/lifelog/internal/services"
)

func (handler *Handler) GetWorkouts(c *fiber.Ctx) error {
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

	sessions, err := handler.workoutService.FetchSessionsForDate(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	return handler.saveWorkout(c, 0)
}

func (handler *Handler) UpdateWorkout(c *fiber.Ctx) error {
	sessionID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	return handler.saveWorkout(c, sessionID)
}

func (handler *Handler) saveWorkout(c *fiber.Ctx, sessionID uint) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	payload := workoutSessionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	location := handler.userLocation(user)
	day, err := parseDateValue(payload.Date, location, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := services.WorkoutSessionInput{
		Date:      day,
		StartTime: payload.StartTime,
		EndTime:   payload.EndTime,
		Location:  payload.Location,
		Notes:     payload.Notes,
	}
	for _, item := range payload.Items {
		input.Items = append(input.Items, services.WorkoutItemInput{
			ExerciseName:  item.ExerciseName,
			Sets:          item.Sets,
			TargetReps:    item.TargetReps,
			RepsPerformed: item.RepsPerformed,
			WeightKg:      item.WeightKg,
			RestSeconds:   item.RestSeconds,
			Notes:         item.Notes,
		})
	}

	session, err := handler.workoutService.SaveSession(user.ID, sessionID, input, location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWorkoutNotFound):
			return apiError(c, fiber.StatusNotFound, "workout not found")
		case errors.Is(err, services.ErrEmptyCatalogName):
			return apiError(c, fiber.StatusBadRequest, "exercise name is required")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save workout")
		}
	}

	if acceptsJSON(c) {
		status := fiber.StatusOK
		if sessionID == 0 {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(fiber.Map{"session": session})
	}
	return redirectToPath(c, "/workouts?date="+session.Date.Format(dateInputLayout))
}

func (handler *Handler) DeleteWorkout(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}
	sessionID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	handler.ensureDependencies()
	if err := handler.workoutService.DeleteSession(user.ID, sessionID); err != nil {
		if errors.Is(err, services.ErrWorkoutNotFound) {
			return apiError(c, fiber.StatusNotFound, "workout not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete workout")
	}
	return redirectOrJSON(c, "/workouts")
}

func (handler *Handler) GetExercises(c *fiber.Ctx) error {
	handler.ensureDependencies()
	exercises, err := handler.catalogService.ListExercises()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load exercises")
	}
	return c.JSON(fiber.Map{"exercises": exercises})
}

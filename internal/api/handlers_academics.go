package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harsh-kumbhar/lifelog/internal/services"
)

func (handler *Handler) GetStudySessions(c *fiber.Ctx) error {
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

	sessions, err := handler.studyService.FetchSessionsForDate(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load study sessions")
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}

func (handler *Handler) CreateStudySession(c *fiber.Ctx) error {
	return handler.saveStudySession(c, 0)
}

func (handler *Handler) UpdateStudySession(c *fiber.Ctx) error {
	sessionID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	return handler.saveStudySession(c, sessionID)
}

func (handler *Handler) saveStudySession(c *fiber.Ctx, sessionID uint) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	payload := studySessionPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	location := handler.userLocation(user)
	day, err := parseDateValue(payload.Date, location, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	session, err := handler.studyService.SaveSession(user.ID, sessionID, services.StudySessionInput{
		Date:         day,
		StartTime:    payload.StartTime,
		EndTime:      payload.EndTime,
		ActivityType: payload.ActivityType,
		Notes:        payload.Notes,
	}, location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStudySessionNotFound):
			return apiError(c, fiber.StatusNotFound, "study session not found")
		case errors.Is(err, services.ErrInvalidActivityType):
			return apiError(c, fiber.StatusBadRequest, "invalid activity type")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save study session")
		}
	}

	if acceptsJSON(c) {
		status := fiber.StatusOK
		if sessionID == 0 {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(fiber.Map{"session": session})
	}
	return redirectToPath(c, "/academics?date="+session.Date.Format(dateInputLayout))
}

func (handler *Handler) DeleteStudySession(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}
	sessionID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	handler.ensureDependencies()
	if err := handler.studyService.DeleteSession(user.ID, sessionID); err != nil {
		if errors.Is(err, services.ErrStudySessionNotFound) {
			return apiError(c, fiber.StatusNotFound, "study session not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete study session")
	}
	return redirectOrJSON(c, "/academics")
}

func (handler *Handler) GetInternshipLogs(c *fiber.Ctx) error {
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

	logs, err := handler.studyService.FetchInternshipLogsForDate(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load internship logs")
	}
	return c.JSON(fiber.Map{"logs": logs})
}

func (handler *Handler) CreateInternshipLog(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	payload := internshipLogPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	location := handler.userLocation(user)
	day, err := parseDateValue(payload.Date, location, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, err := handler.studyService.AddInternshipLog(user.ID, services.InternshipLogInput{
		Date:        day,
		Hours:       payload.Hours,
		TaskTitle:   payload.TaskTitle,
		Description: payload.Description,
		Billable:    payload.Billable,
	}, location)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInternshipLog) {
			return apiError(c, fiber.StatusBadRequest, "internship log needs a title and non-negative hours")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save internship log")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"log": entry})
	}
	return redirectToPath(c, "/academics?date="+entry.Date.Format(dateInputLayout))
}

func (handler *Handler) DeleteInternshipLog(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}
	logID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	handler.ensureDependencies()
	if err := handler.studyService.DeleteInternshipLog(user.ID, logID); err != nil {
		if errors.Is(err, services.ErrInternshipLogNotFound) {
			return apiError(c, fiber.StatusNotFound, "internship log not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete internship log")
	}
	return redirectOrJSON(c, "/academics")
}

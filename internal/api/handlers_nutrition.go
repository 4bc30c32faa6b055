package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/harsh-kumbhar/lifelog/internal/models"
	"github.com/harsh-kumbhar/lifelog/internal/services"
)

func (handler *Handler) GetMeals(c *fiber.Ctx) error {
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

	meals, err := handler.nutritionService.FetchMealsForDate(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}
	protein, calories, err := handler.nutritionService.DailyTotals(user.ID, day, location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to total meals")
	}
	return c.JSON(fiber.Map{
		"meals":         meals,
		"protein_total": protein,
		"calorie_total": calories,
	})
}

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	return handler.saveMeal(c, 0)
}

func (handler *Handler) UpdateMeal(c *fiber.Ctx) error {
	entryID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}
	return handler.saveMeal(c, entryID)
}

func (handler *Handler) saveMeal(c *fiber.Ctx, entryID uint) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}

	payload := mealEntryPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.ensureDependencies()
	location := handler.userLocation(user)
	day, err := parseDateValue(payload.Date, location, time.Now())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := services.MealEntryInput{
		Date:     day,
		Time:     payload.Time,
		MealType: payload.MealType,
		Notes:    payload.Notes,
	}
	for _, item := range payload.Items {
		input.Items = append(input.Items, services.MealItemInput{
			FoodName:    item.FoodName,
			AmountGrams: item.AmountGrams,
			Unit:        item.Unit,
		})
	}

	entry, err := handler.nutritionService.SaveMeal(user.ID, entryID, input, location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMealNotFound):
			return apiError(c, fiber.StatusNotFound, "meal not found")
		case errors.Is(err, services.ErrInvalidMealType):
			return apiError(c, fiber.StatusBadRequest, "invalid meal type")
		case errors.Is(err, services.ErrInvalidFoodAmount):
			return apiError(c, fiber.StatusBadRequest, "food amount must be positive")
		case errors.Is(err, services.ErrFoodNotFound):
			return apiError(c, fiber.StatusUnprocessableEntity, "food not found; add it to the catalog first")
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to save meal")
		}
	}

	if acceptsJSON(c) {
		status := fiber.StatusOK
		if entryID == 0 {
			status = fiber.StatusCreated
		}
		return c.Status(status).JSON(fiber.Map{"meal": entry})
	}
	return redirectToPath(c, "/nutrition?date="+entry.Date.Format(dateInputLayout))
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	user, handled, err := currentUserOrUnauthorized(c)
	if err != nil || handled {
		return err
	}
	entryID, err := parseUintParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	handler.ensureDependencies()
	if err := handler.nutritionService.DeleteMeal(user.ID, entryID); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return apiError(c, fiber.StatusNotFound, "meal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete meal")
	}
	return redirectOrJSON(c, "/nutrition")
}

func (handler *Handler) GetFoods(c *fiber.Ctx) error {
	handler.ensureDependencies()
	foods, err := handler.catalogService.ListFoods()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load foods")
	}
	return c.JSON(fiber.Map{"foods": foods})
}

func (handler *Handler) CreateFood(c *fiber.Ctx) error {
	if _, handled, err := currentUserOrUnauthorized(c); err != nil || handled {
		return err
	}

	payload := foodPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if payload.ProteinPer100g < 0 {
		return apiError(c, fiber.StatusBadRequest, "protein must be non-negative")
	}

	handler.ensureDependencies()
	food := models.FoodItem{
		Name:            payload.Name,
		ProteinPer100g:  payload.ProteinPer100g,
		CaloriesPer100g: payload.CaloriesPer100g,
		CarbsPer100g:    payload.CarbsPer100g,
		FatPer100g:      payload.FatPer100g,
	}
	if err := handler.catalogService.AddFood(&food); err != nil {
		if errors.Is(err, services.ErrEmptyCatalogName) {
			return apiError(c, fiber.StatusBadRequest, "food name is required")
		}
		return apiError(c, fiber.StatusConflict, "failed to add food")
	}

	if acceptsJSON(c) {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"food": food})
	}
	return redirectToPath(c, "/nutrition")
}

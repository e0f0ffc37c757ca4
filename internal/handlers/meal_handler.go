package handlers

import (
	"ctws/internal/schemas"
	"ctws/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// MealHandler handles HTTP requests for meals.
type MealHandler struct {
	service *services.MealService
	log     logrus.FieldLogger
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(service *services.MealService, log logrus.FieldLogger) *MealHandler {
	return &MealHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the meal routes with the Fiber router.
func (h *MealHandler) RegisterRoutes(router fiber.Router) {
	mealRoutes := router.Group("/meal")
	mealRoutes.Get("/", h.HandleGetMeals)
	mealRoutes.Post("/", h.HandleAddMeal)
	mealRoutes.Get("/:meal_id/", h.HandleGetMeal)
	mealRoutes.Delete("/:meal_id/", h.HandleDeleteMeal)
}

type mealLookupQuery struct {
	IncludeDeleted bool `query:"include_deleted"`
}

// HandleGetMeals lists meals filtered by owner and creation time.
func (h *MealHandler) HandleGetMeals(c *fiber.Ctx) error {
	var navQuery schemas.NavigationQuery
	if err := parseQuery(c, &navQuery); err != nil {
		return respondError(c, h.log, err)
	}
	var filterQuery schemas.MealFilterQuery
	if err := parseQuery(c, &filterQuery); err != nil {
		return respondError(c, h.log, err)
	}

	nav, err := navQuery.Navigation()
	if err != nil {
		return respondError(c, h.log, err)
	}
	filter, err := filterQuery.Filter()
	if err != nil {
		return respondError(c, h.log, err)
	}

	meals, err := h.service.GetMeals(c.UserContext(), filter, nav)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schemas.NewMealResponses(meals))
}

// HandleAddMeal logs a new meal for an existing user.
func (h *MealHandler) HandleAddMeal(c *fiber.Ctx) error {
	var req schemas.MealCreate
	if err := parseBody(c, &req); err != nil {
		return respondError(c, h.log, err)
	}

	meal, err := h.service.AddMeal(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schemas.NewMealResponse(meal))
}

// HandleGetMeal returns one meal.
func (h *MealHandler) HandleGetMeal(c *fiber.Ctx) error {
	id, err := parseID(c, "meal_id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var q mealLookupQuery
	if err := parseQuery(c, &q); err != nil {
		return respondError(c, h.log, err)
	}

	meal, err := h.service.GetMeal(c.UserContext(), id, q.IncludeDeleted)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schemas.NewMealResponse(meal))
}

// HandleDeleteMeal soft-deletes a meal and returns it.
func (h *MealHandler) HandleDeleteMeal(c *fiber.Ctx) error {
	id, err := parseID(c, "meal_id")
	if err != nil {
		return respondError(c, h.log, err)
	}

	meal, err := h.service.DeleteMeal(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schemas.NewMealResponse(meal))
}

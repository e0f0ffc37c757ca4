package handlers

import (
	"ctws/internal/schemas"
	"ctws/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests for users, their body parameters and
// telegram credentials.
type UserHandler struct {
	users *services.UserService
	creds *services.TelegramCredentialsService
	log   logrus.FieldLogger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users *services.UserService, creds *services.TelegramCredentialsService, log logrus.FieldLogger) *UserHandler {
	return &UserHandler{
		users: users,
		creds: creds,
		log:   log,
	}
}

// RegisterRoutes registers the user routes. The router must be strict about
// trailing slashes: "/user" lists users while "/user/" looks one up.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/user", h.HandleCreateUser)
	router.Get("/user", h.HandleGetUsers)
	router.Get("/user/", h.HandleGetUser)
	router.Get("/user/:user_id", h.HandleGetUserByID)
	router.Post("/user/:user_id/body_parameters", h.HandleAddBodyParameters)
	router.Post("/user/:user_id/telegram_credentials", h.HandleCreateTelegramCredentials)
}

// HandleCreateUser registers a user.
func (h *UserHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req schemas.UserCreate
	if err := parseBody(c, &req); err != nil {
		return respondError(c, h.log, err)
	}

	user, err := h.users.CreateUser(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schemas.NewUserResponse(user))
}

// HandleAddBodyParameters appends a body measurement to a user's history.
func (h *UserHandler) HandleAddBodyParameters(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var req schemas.BodyParametersCreate
	if err := parseBody(c, &req); err != nil {
		return respondError(c, h.log, err)
	}

	if _, err := h.users.AddBodyParameters(c.UserContext(), userID, req); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleCreateTelegramCredentials links a Telegram account to a user.
func (h *UserHandler) HandleCreateTelegramCredentials(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var req schemas.TelegramCredentialsCreate
	if err := parseBody(c, &req); err != nil {
		return respondError(c, h.log, err)
	}

	creds, err := h.creds.CreateTelegramCredentials(c.UserContext(), userID, req)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schemas.NewTelegramCredentials(creds))
}

// HandleGetUsers lists users one page at a time.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	var navQuery schemas.NavigationQuery
	if err := parseQuery(c, &navQuery); err != nil {
		return respondError(c, h.log, err)
	}
	var includeQuery schemas.UserIncludeQuery
	if err := parseQuery(c, &includeQuery); err != nil {
		return respondError(c, h.log, err)
	}
	nav, err := navQuery.Navigation()
	if err != nil {
		return respondError(c, h.log, err)
	}

	users, err := h.users.GetUsers(c.UserContext(), includeQuery.Include(), nav)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schemas.NewUserResponses(users))
}

// HandleGetUser looks a user up by id and/or telegram id.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	var filter schemas.UserFilter
	if err := parseQuery(c, &filter); err != nil {
		return respondError(c, h.log, err)
	}
	var includeQuery schemas.UserIncludeQuery
	if err := parseQuery(c, &includeQuery); err != nil {
		return respondError(c, h.log, err)
	}

	user, err := h.users.GetUser(c.UserContext(), filter, includeQuery.Include())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schemas.NewUserResponse(user))
}

// HandleGetUserByID returns one user with every relation loaded unless
// include flags say otherwise.
func (h *UserHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c, "user_id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	var includeQuery schemas.UserIncludeQuery
	if err := parseQuery(c, &includeQuery); err != nil {
		return respondError(c, h.log, err)
	}

	user, err := h.users.GetUser(c.UserContext(), schemas.UserFilter{ID: &id}, includeQuery.Include())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(schemas.NewUserResponse(user))
}

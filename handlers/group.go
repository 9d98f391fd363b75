package handlers

import (
	"photo-contest-system/middleware"
	"photo-contest-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupGroupRoutes wires group membership management: create, join by code,
// list mine, and group detail.
func SetupGroupRoutes(app *fiber.App, groups *services.GroupService) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	secured.Post("/groups", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		if name, _ := c.Locals("user_name").(string); name != "" {
			_ = groups.EnsureUser(userID, name)
		}

		var body struct {
			Name string `json:"name"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		group, err := groups.CreateGroup(userID, body.Name)
		if err != nil {
			return contestError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Group created successfully",
			"group":   group,
		})
	})

	secured.Post("/groups/join", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		if name, _ := c.Locals("user_name").(string); name != "" {
			_ = groups.EnsureUser(userID, name)
		}

		var body struct {
			Code string `json:"code"`
		}
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		group, err := groups.JoinGroup(userID, body.Code)
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "Joined group",
			"group":   group,
		})
	})

	secured.Get("/groups", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		list, err := groups.UserGroups(userID)
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(fiber.Map{"groups": list})
	})

	secured.Get("/groups/:id", func(c *fiber.Ctx) error {
		group, err := groups.GetGroup(c.Params("id"))
		if err != nil {
			return contestError(c, err)
		}
		members, err := groups.GroupMembers(group.ID)
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(fiber.Map{
			"group":   group,
			"members": members,
		})
	})
}

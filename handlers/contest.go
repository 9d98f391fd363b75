package handlers

import (
	"errors"
	"log"

	"photo-contest-system/middleware"
	"photo-contest-system/models"
	"photo-contest-system/services"
	"photo-contest-system/utils"

	"github.com/gofiber/fiber/v2"
)

// contestError maps the service layer's expected conditions onto statuses.
// Anything unrecognized is an infrastructure failure and comes back as 500.
func contestError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateSubmission),
		errors.Is(err, services.ErrSubmissionsClosed),
		errors.Is(err, services.ErrSelfVote),
		errors.Is(err, services.ErrDuplicateVote),
		errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrInvalidJoinCode):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("❌ [CONTEST] %s %s failed: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

// SetupContestRoutes wires the contest query surface: prompts, submissions,
// votes, winners and leaderboards for both scopes.
func SetupContestRoutes(
	app *fiber.App,
	prompts *services.PromptService,
	submissions *services.SubmissionService,
	votes *services.VoteService,
	leaderboards *services.LeaderboardService,
	groups *services.GroupService,
) {
	secured := app.Group("/", middleware.UserContextMiddleware())

	// --- Global contest ---
	secured.Get("/global/prompt", func(c *fiber.Ctx) error {
		prompt, err := prompts.TodayPrompt(models.GlobalScopeKey)
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(prompt)
	})

	secured.Get("/global/today-submissions", func(c *fiber.Ctx) error {
		subs, err := submissions.TodaySubmissions(models.GlobalScopeKey)
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(subs)
	})

	secured.Get("/global/today-winner", func(c *fiber.Ctx) error {
		winner, err := submissions.TodayWinner(models.GlobalScopeKey)
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(fiber.Map{"message": "No global winner yet"})
		}
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(winner)
	})

	secured.Get("/global/leaderboard", func(c *fiber.Ctx) error {
		entries, err := leaderboards.Leaderboard(models.GlobalScopeKey)
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(entries)
	})

	// --- Group contest, same surface keyed by group id ---
	secured.Get("/groups/:id/prompt", func(c *fiber.Ctx) error {
		prompt, err := prompts.TodayPrompt(c.Params("id"))
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(prompt)
	})

	secured.Get("/groups/:id/today-submissions", func(c *fiber.Ctx) error {
		subs, err := submissions.TodaySubmissions(c.Params("id"))
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(subs)
	})

	secured.Get("/groups/:id/today-winner", func(c *fiber.Ctx) error {
		winner, err := submissions.TodayWinner(c.Params("id"))
		if errors.Is(err, services.ErrNotFound) {
			return c.JSON(fiber.Map{"message": "No winner today."})
		}
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(winner)
	})

	secured.Get("/groups/:id/leaderboard", func(c *fiber.Ctx) error {
		if _, err := groups.GetGroup(c.Params("id")); err != nil {
			return contestError(c, err)
		}
		entries, err := leaderboards.Leaderboard(c.Params("id"))
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(entries)
	})

	// --- Entries and votes ---
	secured.Post("/submissions", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		if name, _ := c.Locals("user_name").(string); name != "" {
			_ = groups.EnsureUser(userID, name)
		}

		promptText := c.FormValue("prompt")
		imageURL := c.FormValue("image_url")
		if file, err := c.FormFile("image"); err == nil && file.Size > 0 {
			url, err := utils.StoreImage(file)
			if err != nil {
				log.Printf("❌ [CONTEST] Image store failed: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to store image"})
			}
			imageURL = url
		}

		var groupID *string
		if id := c.FormValue("group_id"); id != "" {
			groupID = &id
		}

		submission, err := submissions.CreateSubmission(userID, groupID, promptText, imageURL)
		if err != nil {
			return contestError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":    "Submission uploaded",
			"submission": submission,
		})
	})

	secured.Post("/submissions/:id/vote", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		count, err := votes.CastVote(c.Params("id"), userID)
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "Vote counted successfully",
			"votes":   count,
		})
	})
}

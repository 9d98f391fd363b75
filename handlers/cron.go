package handlers

import (
	"log"

	"photo-contest-system/services"

	"github.com/gofiber/fiber/v2"
)

// SetupCronRoutes exposes the three scheduled passes as manual triggers.
// Each call is the same idempotent service operation the scheduler runs, so
// poking one while its tick fires cannot duplicate prompts or awards.
func SetupCronRoutes(app *fiber.App, prompts *services.PromptService, resolver *services.ResolutionService, clock services.Clock) {
	cron := app.Group("/cron")

	cron.Post("/daily-prompt", func(c *fiber.Ctx) error {
		log.Println("🌅 Manual daily prompt trigger")
		prompt, err := prompts.GetOrCreateGlobalPrompt(services.Today(clock))
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(fiber.Map{
			"message": "Daily prompt generated",
			"prompt":  prompt,
		})
	})

	cron.Post("/global-winner", func(c *fiber.Ctx) error {
		log.Println("🏆 Manual global winner trigger")
		outcome, err := resolver.ResolveGlobalDay(services.Today(clock))
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(outcome)
	})

	cron.Post("/group-winners", func(c *fiber.Ctx) error {
		log.Println("👥 Manual group winners trigger")
		outcomes, err := resolver.ResolveAllGroupDays(services.Today(clock))
		if err != nil {
			return contestError(c, err)
		}
		return c.JSON(fiber.Map{"results": outcomes})
	})
}

// services/scheduler.go
package services

import (
	"log"

	"photo-contest-system/models"

	"github.com/go-co-op/gocron/v2"
)

// Daily tick times, local to the contest zone. Prompts go out just after
// midnight; group winners run after the 21:00 group cutoff; the global winner
// runs at the end of the open-all-day global window.
const (
	dailyPromptCron  = "5 0 * * *"
	groupWinnerCron  = "30 21 * * *"
	globalWinnerCron = "50 23 * * *"
)

// StartContestScheduler wires the three daily ticks. Every task is the same
// idempotent service call the manual trigger routes use, so a tick racing an
// admin rerun cannot duplicate prompts or awards.
func StartContestScheduler(prompts *PromptService, resolver *ResolutionService, clock Clock) {
	sched, err := gocron.NewScheduler(gocron.WithLocation(clock.Location()))
	if err != nil {
		log.Fatal("failed to create contest scheduler:", err)
	}

	_, _ = sched.NewJob(
		gocron.CronJob(dailyPromptCron, false),
		gocron.NewTask(func() {
			log.Println("🌅 Running daily prompt tick")
			if _, err := prompts.GetOrCreateGlobalPrompt(Today(clock)); err != nil {
				log.Printf("[Scheduler] Daily global prompt failed: %v", err)
			}
			issueGroupPrompts(prompts, clock)
		}),
	)

	_, _ = sched.NewJob(
		gocron.CronJob(groupWinnerCron, false),
		gocron.NewTask(func() {
			log.Println("👥 Running group winners tick")
			if _, err := resolver.ResolveAllGroupDays(Today(clock)); err != nil {
				log.Printf("[Scheduler] Group winner pass failed: %v", err)
			}
		}),
	)

	_, _ = sched.NewJob(
		gocron.CronJob(globalWinnerCron, false),
		gocron.NewTask(func() {
			log.Println("🏆 Running global winner tick")
			if _, err := resolver.ResolveGlobalDay(Today(clock)); err != nil {
				log.Printf("[Scheduler] Global winner pass failed: %v", err)
			}
		}),
	)

	sched.Start()
}

// issueGroupPrompts pre-creates today's prompt for every group so the first
// member to open the app doesn't pay for creation. Lazy creation on read
// still covers groups created later in the day.
func issueGroupPrompts(prompts *PromptService, clock Clock) {
	var groups []models.Group
	if err := prompts.DB.Find(&groups).Error; err != nil {
		log.Printf("[Scheduler] Listing groups for prompts failed: %v", err)
		return
	}
	day := Today(clock)
	for _, group := range groups {
		if _, err := prompts.GetOrCreateGroupPrompt(group.ID, day); err != nil {
			log.Printf("[Scheduler] Prompt for group %s failed: %v", group.ID, err)
		}
	}
}

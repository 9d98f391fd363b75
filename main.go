package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"photo-contest-system/handlers"
	"photo-contest-system/middleware"
	"photo-contest-system/models"
	"photo-contest-system/services"
	"photo-contest-system/utils"
	"photo-contest-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // photos only
	})

	// 🔐 GLOBAL: only Gateway requests allowed — identity arrives in headers
	app.Use(middleware.GatewayAuthMiddleware())

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOrigins = "http://localhost:3000"
	}
	origins := strings.Split(allowedOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-User-ID, X-User-Name",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}
	if !utils.R2Enabled() {
		log.Println("⚠️  R2 not configured, storing submission images on local disk")
		if err := utils.EnsureUploadDir(); err != nil {
			log.Fatal("failed to ensure upload dir:", err)
		}
	}

	// TranslateError so unique-constraint races surface as gorm.ErrDuplicatedKey;
	// the admission and voting paths depend on it.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.ContestUser{},
		&models.Group{},
		&models.DailyPrompt{},
		&models.Submission{},
		&models.Ballot{},
		&models.LedgerEntry{},
		&models.ContestResolution{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	cfg := services.LoadContestConfig()
	clock := services.NewClock(cfg.Location)

	promptService := services.NewPromptService(db, clock)
	submissionService := services.NewSubmissionService(db, clock, cfg)
	voteService := services.NewVoteService(db)
	groupService := services.NewGroupService(db)
	leaderboardService := services.NewLeaderboardService(db)
	resolutionService := services.NewResolutionService(db, clock)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if profileServiceURL := os.Getenv("PROFILE_SERVICE_URL"); profileServiceURL != "" {
		syncWorker := workers.NewProfileSyncWorker(db, profileServiceURL, os.Getenv("CONTEST_SERVICE_TOKEN"))
		go syncWorker.Start(ctx)
	} else {
		log.Println("⚠️  PROFILE_SERVICE_URL not set, skipping profile sync worker")
	}

	services.StartContestScheduler(promptService, resolutionService, clock)

	handlers.SetupContestRoutes(app, promptService, submissionService, voteService, leaderboardService, groupService)
	handlers.SetupGroupRoutes(app, groupService)
	handlers.SetupCronRoutes(app, promptService, resolutionService, clock)

	app.Static("/uploads", "./uploads")

	go func() {
		if err := app.Listen(":5300"); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Println("✅ Server running on http://localhost:5300")
	log.Printf("✅ Contest time zone: %s (group cutoff %02d:00)", cfg.Location, cfg.GroupCutoffHour)
	log.Println("✅ Daily ticks scheduled: prompts, group winners, global winner")
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")

	<-ctx.Done()
	log.Println("Shutting down server...")
}

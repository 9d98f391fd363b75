package services

import (
	"testing"
	"time"

	"photo-contest-system/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema. A single
// pooled connection keeps concurrent test goroutines on one database and
// serializes them the way the shared store would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.ContestUser{},
		&models.Group{},
		&models.DailyPrompt{},
		&models.Submission{},
		&models.Ballot{},
		&models.LedgerEntry{},
		&models.ContestResolution{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// testZone avoids LoadLocation so tests don't depend on system tzdata.
var testZone = time.FixedZone("IST", 5*3600+1800)

// fixedClock pins the contest calendar to an arbitrary instant.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now.In(testZone) }
func (c *fixedClock) Location() *time.Location { return testZone }

// clockAt builds a fixed clock at the given local wall-clock time.
func clockAt(year int, month time.Month, day, hour, minute int) *fixedClock {
	return &fixedClock{now: time.Date(year, month, day, hour, minute, 0, 0, testZone)}
}

func testConfig() ContestConfig {
	return ContestConfig{
		Location:         testZone,
		GroupCutoffHour:  21,
		GlobalCutoffHour: -1,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, id, username string) {
	t.Helper()
	if err := db.Create(&models.ContestUser{ID: id, Username: username}).Error; err != nil {
		t.Fatalf("create user %s: %v", id, err)
	}
}

func createTestGroup(t *testing.T, db *gorm.DB, ownerID string) *models.Group {
	t.Helper()
	svc := NewGroupService(db)
	group, err := svc.CreateGroup(ownerID, "Weekend Shooters")
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	return group
}

// seedSubmission inserts a submission row directly, bypassing the admission
// gate, so resolution tests can control votes and creation order.
func seedSubmission(t *testing.T, db *gorm.DB, userID, scopeKey string, day time.Time, votes int64, createdAt time.Time) *models.Submission {
	t.Helper()
	var groupID *string
	if scopeKey != models.GlobalScopeKey {
		groupID = &scopeKey
	}
	sub := models.Submission{
		ID:        uuid.NewString(),
		UserID:    userID,
		GroupID:   groupID,
		IsGlobal:  groupID == nil,
		ScopeKey:  scopeKey,
		Day:       day,
		Prompt:    "Golden hour",
		ImageURL:  "https://cdn.example.com/" + uuid.NewString() + ".jpg",
		Votes:     votes,
		CreatedAt: createdAt,
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatalf("seed submission for %s: %v", userID, err)
	}
	return &sub
}

func ledgerPoints(t *testing.T, db *gorm.DB, scopeKey, userID string) int64 {
	t.Helper()
	var entry models.LedgerEntry
	err := db.Where("scope_key = ? AND user_id = ?", scopeKey, userID).First(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return 0
	}
	if err != nil {
		t.Fatalf("read ledger %s/%s: %v", scopeKey, userID, err)
	}
	return entry.Points
}

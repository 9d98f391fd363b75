package services

import (
	"errors"
	"testing"
	"time"

	"photo-contest-system/models"
)

func TestCreateSubmissionGlobal(t *testing.T) {
	db := newTestDB(t)
	clock := clockAt(2025, time.March, 14, 10, 30)
	svc := NewSubmissionService(db, clock, testConfig())
	createTestUser(t, db, "u1", "ada")

	sub, err := svc.CreateSubmission("u1", nil, "Golden hour", "https://cdn.example.com/a.jpg")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !sub.IsGlobal || sub.GroupID != nil {
		t.Fatal("expected a global submission")
	}
	if sub.Votes != 0 {
		t.Fatalf("new submission must start at zero votes, got %d", sub.Votes)
	}
	if !sub.Day.Equal(Today(clock)) {
		t.Fatalf("day key %v does not match today %v", sub.Day, Today(clock))
	}
}

func TestCreateSubmissionRejectsDuplicatePerScopeDay(t *testing.T) {
	db := newTestDB(t)
	clock := clockAt(2025, time.March, 14, 10, 30)
	svc := NewSubmissionService(db, clock, testConfig())
	createTestUser(t, db, "u1", "ada")
	group := createTestGroup(t, db, "u1")

	if _, err := svc.CreateSubmission("u1", nil, "Golden hour", "https://cdn.example.com/a.jpg"); err != nil {
		t.Fatalf("first global: %v", err)
	}
	// Different prompt and image make no difference.
	_, err := svc.CreateSubmission("u1", nil, "Reflections", "https://cdn.example.com/b.jpg")
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission, got %v", err)
	}

	// The group scope is independent of the global one.
	if _, err := svc.CreateSubmission("u1", &group.ID, "Today's sky", "https://cdn.example.com/c.jpg"); err != nil {
		t.Fatalf("first group: %v", err)
	}
	_, err = svc.CreateSubmission("u1", &group.ID, "Today's sky", "https://cdn.example.com/d.jpg")
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("expected ErrDuplicateSubmission for group repeat, got %v", err)
	}
}

func TestCreateSubmissionNextDayAllowed(t *testing.T) {
	db := newTestDB(t)
	clock := clockAt(2025, time.March, 14, 10, 30)
	svc := NewSubmissionService(db, clock, testConfig())
	createTestUser(t, db, "u1", "ada")

	if _, err := svc.CreateSubmission("u1", nil, "Golden hour", "https://cdn.example.com/a.jpg"); err != nil {
		t.Fatalf("day one: %v", err)
	}

	clock.now = clock.now.AddDate(0, 0, 1)
	if _, err := svc.CreateSubmission("u1", nil, "Reflections", "https://cdn.example.com/b.jpg"); err != nil {
		t.Fatalf("day two should admit a fresh entry: %v", err)
	}
}

func TestGroupCutoffBoundary(t *testing.T) {
	db := newTestDB(t)
	clock := clockAt(2025, time.March, 14, 20, 59)
	svc := NewSubmissionService(db, clock, testConfig())
	createTestUser(t, db, "u1", "ada")
	createTestUser(t, db, "u2", "bob")
	group := createTestGroup(t, db, "u1")

	if _, err := svc.CreateSubmission("u1", &group.ID, "Today's sky", "https://cdn.example.com/a.jpg"); err != nil {
		t.Fatalf("20:59 must be admitted: %v", err)
	}

	clock.now = time.Date(2025, time.March, 14, 21, 0, 0, 0, testZone)
	_, err := svc.CreateSubmission("u2", &group.ID, "Today's sky", "https://cdn.example.com/b.jpg")
	if !errors.Is(err, ErrSubmissionsClosed) {
		t.Fatalf("21:00 must be closed, got %v", err)
	}

	// The global contest has no cutoff by default.
	clock.now = time.Date(2025, time.March, 14, 23, 30, 0, 0, testZone)
	if _, err := svc.CreateSubmission("u2", nil, "Golden hour", "https://cdn.example.com/c.jpg"); err != nil {
		t.Fatalf("global stays open all day: %v", err)
	}
}

func TestDuplicateCheckedBeforeCutoff(t *testing.T) {
	db := newTestDB(t)
	clock := clockAt(2025, time.March, 14, 15, 0)
	svc := NewSubmissionService(db, clock, testConfig())
	createTestUser(t, db, "u1", "ada")
	group := createTestGroup(t, db, "u1")

	if _, err := svc.CreateSubmission("u1", &group.ID, "Today's sky", "https://cdn.example.com/a.jpg"); err != nil {
		t.Fatalf("admit: %v", err)
	}

	clock.now = time.Date(2025, time.March, 14, 22, 0, 0, 0, testZone)
	_, err := svc.CreateSubmission("u1", &group.ID, "Today's sky", "https://cdn.example.com/b.jpg")
	if !errors.Is(err, ErrDuplicateSubmission) {
		t.Fatalf("duplicate wins over cutoff, got %v", err)
	}
}

func TestCreateSubmissionValidation(t *testing.T) {
	db := newTestDB(t)
	clock := clockAt(2025, time.March, 14, 10, 0)
	svc := NewSubmissionService(db, clock, testConfig())
	createTestUser(t, db, "u1", "ada")

	if _, err := svc.CreateSubmission("u1", nil, "Golden hour", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing image: expected ErrValidation, got %v", err)
	}
	if _, err := svc.CreateSubmission("u1", nil, "", "https://cdn.example.com/a.jpg"); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing prompt: expected ErrValidation, got %v", err)
	}

	unknown := "no-such-group"
	if _, err := svc.CreateSubmission("u1", &unknown, "Today's sky", "https://cdn.example.com/a.jpg"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown group: expected ErrNotFound, got %v", err)
	}
}

func TestTodayWinnerRanksOpenDay(t *testing.T) {
	db := newTestDB(t)
	clock := clockAt(2025, time.March, 14, 18, 0)
	svc := NewSubmissionService(db, clock, testConfig())
	createTestUser(t, db, "u1", "ada")
	createTestUser(t, db, "u2", "bob")
	day := Today(clock)

	if _, err := svc.TodayWinner(models.GlobalScopeKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("empty day: expected ErrNotFound, got %v", err)
	}

	seedSubmission(t, db, "u1", models.GlobalScopeKey, day, 2, clock.now.Add(-2*time.Hour))
	leader := seedSubmission(t, db, "u2", models.GlobalScopeKey, day, 5, clock.now.Add(-time.Hour))

	winner, err := svc.TodayWinner(models.GlobalScopeKey)
	if err != nil {
		t.Fatalf("winner: %v", err)
	}
	if winner.ID != leader.ID {
		t.Fatalf("expected %s to lead, got %s", leader.ID, winner.ID)
	}
	if winner.Username != "bob" {
		t.Fatalf("expected leader username attached, got %q", winner.Username)
	}
}

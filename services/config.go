package services

import (
	"log"
	"os"
	"strconv"
	"time"
)

// ContestConfig pins the operational time zone and the per-scope submission
// cutoffs. A cutoff of -1 disables the check for that scope; by default the
// global contest stays open all day while group submissions close at 21:00,
// matching how the contests have always run.
type ContestConfig struct {
	Location         *time.Location
	GroupCutoffHour  int
	GlobalCutoffHour int
}

const (
	defaultTimezone        = "Asia/Kolkata"
	defaultGroupCutoffHour = 21
)

// LoadContestConfig reads CONTEST_TIMEZONE, GROUP_SUBMISSION_CUTOFF_HOUR and
// GLOBAL_SUBMISSION_CUTOFF_HOUR from the environment, falling back to the
// defaults above with a logged warning.
func LoadContestConfig() ContestConfig {
	tz := os.Getenv("CONTEST_TIMEZONE")
	if tz == "" {
		log.Printf("⚠️  CONTEST_TIMEZONE not set, using default: %s", defaultTimezone)
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("invalid CONTEST_TIMEZONE %q: %v", tz, err)
	}

	return ContestConfig{
		Location:         loc,
		GroupCutoffHour:  cutoffFromEnv("GROUP_SUBMISSION_CUTOFF_HOUR", defaultGroupCutoffHour),
		GlobalCutoffHour: cutoffFromEnv("GLOBAL_SUBMISSION_CUTOFF_HOUR", -1),
	}
}

func cutoffFromEnv(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	hour, err := strconv.Atoi(raw)
	if err != nil || hour < -1 || hour > 23 {
		log.Printf("⚠️  %s=%q is not a valid hour, using %d", key, raw, fallback)
		return fallback
	}
	return hour
}

package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"aptads_backend/internals/configs"
	authRepo "aptads_backend/internals/features/users/auth/repository"
)

const (
	defaultCleanupSpec = "30 3 * * *"
	cleanupTimeout     = 30 * time.Second
)

// CleanupJob removes blacklist rows older than TTLDays past their expiry.
type CleanupJob struct {
	DB      *gorm.DB
	TTLDays int
	Now     func() time.Time
}

func (j CleanupJob) Run() {
	now := time.Now
	if j.Now != nil {
		now = j.Now
	}
	before := now().Add(-time.Duration(j.TTLDays) * 24 * time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	n, err := authRepo.CleanupExpiredBlacklist(ctx, j.DB, before)
	if err != nil {
		log.Printf("[CLEANUP ERROR] token_blacklist: %v", err)
		return
	}
	log.Printf("[CLEANUP] token_blacklist: %d rows removed (expired before %s)", n, before.Format(time.RFC3339))
}

// StartBlacklistCleanupScheduler registers the cleanup job and starts the cron.
// The caller stops it on shutdown.
func StartBlacklistCleanupScheduler(db *gorm.DB) (*cron.Cron, error) {
	spec := configs.GetEnv("TOKEN_BLACKLIST_CRON", defaultCleanupSpec)
	job := CleanupJob{DB: db, TTLDays: configs.GetEnvInt("TOKEN_BLACKLIST_TTL_DAYS", 7)}

	c := cron.New(
		cron.WithLocation(configs.Location()),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if _, err := c.AddJob(spec, job); err != nil {
		return nil, err
	}
	c.Start()
	log.Printf("[CLEANUP] token_blacklist scheduler started (%s, ttl %d days)", spec, job.TTLDays)
	return c, nil
}

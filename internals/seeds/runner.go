package seeds

import (
	"log"

	"gorm.io/gorm"

	sections "aptads_backend/internals/seeds/home/sections"
	users "aptads_backend/internals/seeds/users/auth"
)

// RunAllSeeds is idempotent; safe on every boot with DB_SEED=true.
func RunAllSeeds(db *gorm.DB, usersFile string) {
	log.Println("[INFO] Running seeds...")

	//* Users
	users.SeedSuperAdminFromEnv(db)
	if usersFile != "" {
		users.SeedUsersFromJSON(db, usersFile)
	}

	//* Home
	sections.SeedDefaultHomeSections(db)
}

package user

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"aptads_backend/internals/constants"
	userDTO "aptads_backend/internals/features/users/users/dto"
	"aptads_backend/internals/features/users/users/model"
)

type UserSeed struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedUsers inserts users whose email is not taken yet. Returns how many were created.
func SeedUsers(db *gorm.DB, inputs []UserSeed) int {
	created := 0
	for _, data := range inputs {
		email := userDTO.NormalizeEmail(data.Email)
		if email == "" || data.Password == "" {
			log.Printf("⚠️ seed user skipped: email/password missing")
			continue
		}
		if !constants.IsValidRole(data.Role) {
			log.Printf("⚠️ seed user '%s' skipped: unknown role %q", email, data.Role)
			continue
		}

		var existing model.UserModel
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			log.Printf("ℹ️ user '%s' already exists, skipped.", email)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ lookup '%s' failed: %v", email, err)
			continue
		}

		hashed, err := userDTO.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ hash password for '%s' failed: %v", email, err)
			continue
		}
		newUser := model.UserModel{
			UserName: data.UserName,
			Email:    email,
			Password: hashed,
			Role:     data.Role,
			IsActive: true,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ insert user '%s' failed: %v", email, err)
			continue
		}
		log.Printf("✅ user '%s' (%s) created", email, data.Role)
		created++
	}
	return created
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 reading users file:", filePath)
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("❌ read %s: %v", filePath, err)
		return
	}
	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Printf("❌ decode %s: %v", filePath, err)
		return
	}
	SeedUsers(db, inputs)
}

// SeedSuperAdminFromEnv bootstraps the first account from SEED_SUPERADMIN_EMAIL / _PASSWORD.
func SeedSuperAdminFromEnv(db *gorm.DB) {
	email := os.Getenv("SEED_SUPERADMIN_EMAIL")
	password := os.Getenv("SEED_SUPERADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	SeedUsers(db, []UserSeed{{
		UserName: "superadmin",
		Email:    email,
		Password: password,
		Role:     constants.RoleSuperAdmin,
	}})
}

package database

import (
	"log"

	"gorm.io/gorm"

	adModel "aptads_backend/internals/features/ads/advertisements/model"
	bannerModel "aptads_backend/internals/features/ads/banners/model"
	advertiserModel "aptads_backend/internals/features/advertisers/advertisers/model"
	apartmentModel "aptads_backend/internals/features/apartments/apartments/model"
	deviceModel "aptads_backend/internals/features/devices/devices/model"
	sectionModel "aptads_backend/internals/features/home/sections/model"
	authModel "aptads_backend/internals/features/users/auth/model"
	managerModel "aptads_backend/internals/features/users/managers/model"
	userModel "aptads_backend/internals/features/users/users/model"
)

// AutoMigrate keeps the schema in sync with the models (DB_AUTO_MIGRATE=true).
func AutoMigrate(db *gorm.DB) error {
	log.Println("[INFO] Running auto-migrate...")
	return db.AutoMigrate(
		&userModel.UserModel{},
		&authModel.TokenBlacklist{},
		&managerModel.ManagerModel{},
		&apartmentModel.ApartmentModel{},
		&deviceModel.DeviceModel{},
		&advertiserModel.AdvertiserModel{},
		&adModel.AdvertisementModel{},
		&bannerModel.BannerModel{},
		&sectionModel.HomeSectionModel{},
	)
}

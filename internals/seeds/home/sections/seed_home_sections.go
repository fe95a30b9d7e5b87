package sections

import (
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aptads_backend/internals/features/home/sections/model"
)

var DefaultSections = []model.HomeSectionModel{
	{HomeSectionKey: "banner_top", HomeSectionTitle: "Top banner", HomeSectionSortOrder: 0, HomeSectionIsVisible: true},
	{HomeSectionKey: "notices", HomeSectionTitle: "Notices", HomeSectionSortOrder: 1, HomeSectionIsVisible: true},
	{HomeSectionKey: "local_ads", HomeSectionTitle: "Neighborhood ads", HomeSectionSortOrder: 2, HomeSectionIsVisible: true},
	{HomeSectionKey: "banner_middle", HomeSectionTitle: "Middle banner", HomeSectionSortOrder: 3, HomeSectionIsVisible: true},
}

// SeedDefaultHomeSections inserts the default layout; existing keys are left alone.
func SeedDefaultHomeSections(db *gorm.DB) {
	rows := make([]model.HomeSectionModel, len(DefaultSections))
	copy(rows, DefaultSections)

	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "home_section_key"}},
		DoNothing: true,
	}).Create(&rows)
	if res.Error != nil {
		log.Printf("❌ seed home_sections: %v", res.Error)
		return
	}
	log.Printf("✅ home_sections seeded (%d new)", res.RowsAffected)
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type HomeSectionModel struct {
	HomeSectionID        uuid.UUID `gorm:"column:home_section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"home_section_id"`
	HomeSectionKey       string    `gorm:"column:home_section_key;type:varchar(50);not null;uniqueIndex:uq_home_sections_key" json:"home_section_key"`
	HomeSectionTitle     string    `gorm:"column:home_section_title;type:varchar(120);not null" json:"home_section_title"`
	HomeSectionSortOrder int       `gorm:"column:home_section_sort_order;not null;default:0;index:idx_home_sections_sort" json:"home_section_sort_order"`
	HomeSectionIsVisible bool      `gorm:"column:home_section_is_visible;not null;default:true" json:"home_section_is_visible"`
	HomeSectionCreatedAt time.Time `gorm:"column:home_section_created_at;autoCreateTime" json:"home_section_created_at"`
	HomeSectionUpdatedAt time.Time `gorm:"column:home_section_updated_at;autoUpdateTime" json:"home_section_updated_at"`
}

func (HomeSectionModel) TableName() string { return "home_sections" }

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ManagerModel is the on-site contact for an apartment complex.
type ManagerModel struct {
	ManagerID          uuid.UUID      `gorm:"column:manager_id;type:uuid;default:gen_random_uuid();primaryKey" json:"manager_id"`
	ManagerApartmentID uuid.UUID      `gorm:"column:manager_apartment_id;type:uuid;not null;index:idx_managers_apartment" json:"manager_apartment_id"`
	ManagerName        string         `gorm:"column:manager_name;type:varchar(80);not null" json:"manager_name"`
	ManagerPhone       *string        `gorm:"column:manager_phone;type:varchar(30)" json:"manager_phone,omitempty"`
	ManagerEmail       *string        `gorm:"column:manager_email;type:varchar(255)" json:"manager_email,omitempty"`
	ManagerIsActive    bool           `gorm:"column:manager_is_active;not null;default:true" json:"manager_is_active"`
	ManagerCreatedAt   time.Time      `gorm:"column:manager_created_at;autoCreateTime" json:"manager_created_at"`
	ManagerUpdatedAt   time.Time      `gorm:"column:manager_updated_at;autoUpdateTime" json:"manager_updated_at"`
	ManagerDeletedAt   gorm.DeletedAt `gorm:"column:manager_deleted_at;index" json:"-"`
}

func (ManagerModel) TableName() string { return "managers" }

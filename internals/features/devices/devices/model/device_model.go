// file: internals/features/devices/devices/model/device_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel is a signage screen installed in an apartment complex.
// Building/line/place are free-text labels ("101동", "1라인", "엘리베이터").
type DeviceModel struct {
	DeviceID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:device_id" json:"device_id"`
	DeviceApartmentID uuid.UUID `gorm:"type:uuid;not null;index;column:device_apartment_id" json:"device_apartment_id"`

	DeviceSerial   string `gorm:"type:varchar(64);not null;uniqueIndex:uq_devices_serial_alive,where:device_deleted_at IS NULL;column:device_serial" json:"device_serial"`
	DeviceBuilding string `gorm:"type:varchar(40);not null;default:'';column:device_building" json:"device_building"`
	DeviceLine     string `gorm:"type:varchar(40);not null;default:'';column:device_line" json:"device_line"`
	DevicePlace    string `gorm:"type:varchar(80);not null;default:'';column:device_place" json:"device_place"`

	DeviceIsActive   bool       `gorm:"not null;default:true;column:device_is_active" json:"device_is_active"`
	DeviceLastSeenAt *time.Time `gorm:"type:timestamptz;column:device_last_seen_at" json:"device_last_seen_at,omitempty"`

	DeviceCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:device_created_at" json:"device_created_at"`
	DeviceUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:device_updated_at" json:"device_updated_at"`
	DeviceDeletedAt gorm.DeletedAt `gorm:"column:device_deleted_at;index" json:"-"`
}

func (DeviceModel) TableName() string { return "devices" }

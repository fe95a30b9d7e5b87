// file: internals/features/devices/devices/dto/device_dto.go
package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"aptads_backend/internals/features/devices/devices/model"
	helper "aptads_backend/internals/helpers"
)

type CreateDeviceRequest struct {
	DeviceApartmentID uuid.UUID `json:"device_apartment_id" validate:"required"`
	DeviceSerial      string    `json:"device_serial" validate:"required,max=64"`
	DeviceBuilding    string    `json:"device_building" validate:"omitempty,max=40"`
	DeviceLine        string    `json:"device_line" validate:"omitempty,max=40"`
	DevicePlace       string    `json:"device_place" validate:"omitempty,max=80"`
	DeviceIsActive    *bool     `json:"device_is_active"`
}

func (r *CreateDeviceRequest) ToModel() *model.DeviceModel {
	isActive := true
	if r.DeviceIsActive != nil {
		isActive = *r.DeviceIsActive
	}
	return &model.DeviceModel{
		DeviceApartmentID: r.DeviceApartmentID,
		DeviceSerial:      strings.TrimSpace(r.DeviceSerial),
		DeviceBuilding:    strings.TrimSpace(r.DeviceBuilding),
		DeviceLine:        strings.TrimSpace(r.DeviceLine),
		DevicePlace:       strings.TrimSpace(r.DevicePlace),
		DeviceIsActive:    isActive,
	}
}

type PatchDeviceRequest struct {
	DeviceApartmentID helper.UpdateField[uuid.UUID] `json:"device_apartment_id"`
	DeviceSerial      helper.UpdateField[string]    `json:"device_serial"`
	DeviceBuilding    helper.UpdateField[string]    `json:"device_building"`
	DeviceLine        helper.UpdateField[string]    `json:"device_line"`
	DevicePlace       helper.UpdateField[string]    `json:"device_place"`
	DeviceIsActive    helper.UpdateField[bool]      `json:"device_is_active"`
}

func (p *PatchDeviceRequest) ApplyToModel(m *model.DeviceModel) error {
	if p.DeviceApartmentID.ShouldUpdate() {
		if p.DeviceApartmentID.IsNull() || p.DeviceApartmentID.Val() == uuid.Nil {
			return errors.New("device_apartment_id cannot be null")
		}
		m.DeviceApartmentID = p.DeviceApartmentID.Val()
	}
	if p.DeviceSerial.ShouldUpdate() {
		s := strings.TrimSpace(p.DeviceSerial.Val())
		if s == "" {
			return errors.New("device_serial cannot be empty")
		}
		m.DeviceSerial = s
	}
	// labels: null and "" both mean "unset"
	if p.DeviceBuilding.ShouldUpdate() {
		m.DeviceBuilding = strings.TrimSpace(p.DeviceBuilding.Val())
	}
	if p.DeviceLine.ShouldUpdate() {
		m.DeviceLine = strings.TrimSpace(p.DeviceLine.Val())
	}
	if p.DevicePlace.ShouldUpdate() {
		m.DevicePlace = strings.TrimSpace(p.DevicePlace.Val())
	}
	if p.DeviceIsActive.ShouldUpdate() && !p.DeviceIsActive.IsNull() {
		m.DeviceIsActive = p.DeviceIsActive.Val()
	}
	return nil
}

type ListDevicesQuery struct {
	ApartmentID *uuid.UUID `query:"apartment_id"`
	Q           string     `query:"q" validate:"omitempty,max=64"`
	IsActive    *bool      `query:"is_active"`
}

type DeviceResponse struct {
	DeviceID          uuid.UUID  `json:"device_id"`
	DeviceApartmentID uuid.UUID  `json:"device_apartment_id"`
	DeviceSerial      string     `json:"device_serial"`
	DeviceBuilding    string     `json:"device_building"`
	DeviceLine        string     `json:"device_line"`
	DevicePlace       string     `json:"device_place"`
	DeviceIsActive    bool       `json:"device_is_active"`
	DeviceLastSeenAt  *time.Time `json:"device_last_seen_at,omitempty"`
	DeviceCreatedAt   time.Time  `json:"device_created_at"`
	DeviceUpdatedAt   time.Time  `json:"device_updated_at"`
}

func FromModel(m *model.DeviceModel) DeviceResponse {
	return DeviceResponse{
		DeviceID:          m.DeviceID,
		DeviceApartmentID: m.DeviceApartmentID,
		DeviceSerial:      m.DeviceSerial,
		DeviceBuilding:    m.DeviceBuilding,
		DeviceLine:        m.DeviceLine,
		DevicePlace:       m.DevicePlace,
		DeviceIsActive:    m.DeviceIsActive,
		DeviceLastSeenAt:  m.DeviceLastSeenAt,
		DeviceCreatedAt:   m.DeviceCreatedAt,
		DeviceUpdatedAt:   m.DeviceUpdatedAt,
	}
}

func FromModels(list []model.DeviceModel) []DeviceResponse {
	out := make([]DeviceResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

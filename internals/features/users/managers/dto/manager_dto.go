package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"aptads_backend/internals/features/users/managers/model"
	helper "aptads_backend/internals/helpers"
)

type CreateManagerRequest struct {
	ManagerApartmentID uuid.UUID `json:"manager_apartment_id" validate:"required"`
	ManagerName        string    `json:"manager_name" validate:"required,max=80"`
	ManagerPhone       *string   `json:"manager_phone" validate:"omitempty,max=30"`
	ManagerEmail       *string   `json:"manager_email" validate:"omitempty,email,max=255"`
	ManagerIsActive    *bool     `json:"manager_is_active"`
}

func (r *CreateManagerRequest) ToModel() *model.ManagerModel {
	active := true
	if r.ManagerIsActive != nil {
		active = *r.ManagerIsActive
	}
	return &model.ManagerModel{
		ManagerApartmentID: r.ManagerApartmentID,
		ManagerName:        strings.TrimSpace(r.ManagerName),
		ManagerPhone:       helper.TrimPtr(r.ManagerPhone),
		ManagerEmail:       helper.TrimPtr(r.ManagerEmail),
		ManagerIsActive:    active,
	}
}

type PatchManagerRequest struct {
	ManagerApartmentID helper.UpdateField[uuid.UUID] `json:"manager_apartment_id"`
	ManagerName        helper.UpdateField[string]    `json:"manager_name"`
	ManagerPhone       helper.UpdateField[string]    `json:"manager_phone"`
	ManagerEmail       helper.UpdateField[string]    `json:"manager_email"`
	ManagerIsActive    helper.UpdateField[bool]      `json:"manager_is_active"`
}

func (p *PatchManagerRequest) ApplyToModel(m *model.ManagerModel) error {
	if p.ManagerApartmentID.ShouldUpdate() {
		if p.ManagerApartmentID.IsNull() || p.ManagerApartmentID.Val() == uuid.Nil {
			return errors.New("manager_apartment_id cannot be null")
		}
		m.ManagerApartmentID = p.ManagerApartmentID.Val()
	}
	if p.ManagerName.ShouldUpdate() {
		n := strings.TrimSpace(p.ManagerName.Val())
		if n == "" {
			return errors.New("manager_name cannot be empty")
		}
		m.ManagerName = n
	}
	if p.ManagerPhone.ShouldUpdate() {
		v := p.ManagerPhone.Val()
		m.ManagerPhone = helper.TrimPtr(&v)
	}
	if p.ManagerEmail.ShouldUpdate() {
		v := p.ManagerEmail.Val()
		m.ManagerEmail = helper.TrimPtr(&v)
		if m.ManagerEmail != nil {
			if err := helper.Validator().Var(*m.ManagerEmail, "email"); err != nil {
				return errors.New("manager_email is invalid")
			}
		}
	}
	if p.ManagerIsActive.ShouldUpdate() && !p.ManagerIsActive.IsNull() {
		m.ManagerIsActive = p.ManagerIsActive.Val()
	}
	return nil
}

type ListManagersQuery struct {
	ApartmentID *uuid.UUID `query:"apartment_id"`
	Q           string     `query:"q" validate:"omitempty,max=80"`
	IsActive    *bool      `query:"is_active"`
}

type ManagerResponse struct {
	ManagerID          uuid.UUID `json:"manager_id"`
	ManagerApartmentID uuid.UUID `json:"manager_apartment_id"`
	ManagerName        string    `json:"manager_name"`
	ManagerPhone       *string   `json:"manager_phone,omitempty"`
	ManagerEmail       *string   `json:"manager_email,omitempty"`
	ManagerIsActive    bool      `json:"manager_is_active"`
	ManagerCreatedAt   time.Time `json:"manager_created_at"`
	ManagerUpdatedAt   time.Time `json:"manager_updated_at"`
}

func FromModel(m *model.ManagerModel) ManagerResponse {
	return ManagerResponse{
		ManagerID:          m.ManagerID,
		ManagerApartmentID: m.ManagerApartmentID,
		ManagerName:        m.ManagerName,
		ManagerPhone:       m.ManagerPhone,
		ManagerEmail:       m.ManagerEmail,
		ManagerIsActive:    m.ManagerIsActive,
		ManagerCreatedAt:   m.ManagerCreatedAt,
		ManagerUpdatedAt:   m.ManagerUpdatedAt,
	}
}

func FromModels(list []model.ManagerModel) []ManagerResponse {
	out := make([]ManagerResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"aptads_backend/internals/features/home/sections/model"
	helper "aptads_backend/internals/helpers"
)

type CreateHomeSectionRequest struct {
	HomeSectionKey       string `json:"home_section_key" validate:"required,max=50"`
	HomeSectionTitle     string `json:"home_section_title" validate:"required,max=120"`
	HomeSectionSortOrder *int   `json:"home_section_sort_order" validate:"omitempty,min=0"`
	HomeSectionIsVisible *bool  `json:"home_section_is_visible"`
}

func (r *CreateHomeSectionRequest) ToModel(nextOrder int) *model.HomeSectionModel {
	visible := true
	if r.HomeSectionIsVisible != nil {
		visible = *r.HomeSectionIsVisible
	}
	order := nextOrder
	if r.HomeSectionSortOrder != nil {
		order = *r.HomeSectionSortOrder
	}
	return &model.HomeSectionModel{
		HomeSectionKey:       strings.ToLower(strings.TrimSpace(r.HomeSectionKey)),
		HomeSectionTitle:     strings.TrimSpace(r.HomeSectionTitle),
		HomeSectionSortOrder: order,
		HomeSectionIsVisible: visible,
	}
}

type PatchHomeSectionRequest struct {
	HomeSectionKey       helper.UpdateField[string] `json:"home_section_key"`
	HomeSectionTitle     helper.UpdateField[string] `json:"home_section_title"`
	HomeSectionIsVisible helper.UpdateField[bool]   `json:"home_section_is_visible"`
}

func (p *PatchHomeSectionRequest) ApplyToModel(m *model.HomeSectionModel) error {
	if p.HomeSectionKey.ShouldUpdate() {
		k := strings.ToLower(strings.TrimSpace(p.HomeSectionKey.Val()))
		if k == "" {
			return errors.New("home_section_key cannot be empty")
		}
		m.HomeSectionKey = k
	}
	if p.HomeSectionTitle.ShouldUpdate() {
		t := strings.TrimSpace(p.HomeSectionTitle.Val())
		if t == "" {
			return errors.New("home_section_title cannot be empty")
		}
		m.HomeSectionTitle = t
	}
	if p.HomeSectionIsVisible.ShouldUpdate() && !p.HomeSectionIsVisible.IsNull() {
		m.HomeSectionIsVisible = p.HomeSectionIsVisible.Val()
	}
	return nil
}

type ReorderRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1,dive,required"`
}

type HomeSectionResponse struct {
	HomeSectionID        uuid.UUID `json:"home_section_id"`
	HomeSectionKey       string    `json:"home_section_key"`
	HomeSectionTitle     string    `json:"home_section_title"`
	HomeSectionSortOrder int       `json:"home_section_sort_order"`
	HomeSectionIsVisible bool      `json:"home_section_is_visible"`
	HomeSectionUpdatedAt time.Time `json:"home_section_updated_at"`
}

func FromModel(m *model.HomeSectionModel) HomeSectionResponse {
	return HomeSectionResponse{
		HomeSectionID:        m.HomeSectionID,
		HomeSectionKey:       m.HomeSectionKey,
		HomeSectionTitle:     m.HomeSectionTitle,
		HomeSectionSortOrder: m.HomeSectionSortOrder,
		HomeSectionIsVisible: m.HomeSectionIsVisible,
		HomeSectionUpdatedAt: m.HomeSectionUpdatedAt,
	}
}

func FromModels(list []model.HomeSectionModel) []HomeSectionResponse {
	out := make([]HomeSectionResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

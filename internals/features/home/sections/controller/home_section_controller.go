// file: internals/features/home/sections/controller/home_section_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	secDTO "aptads_backend/internals/features/home/sections/dto"
	secModel "aptads_backend/internals/features/home/sections/model"
	secService "aptads_backend/internals/features/home/sections/service"
	helper "aptads_backend/internals/helpers"
)

type HomeSectionController struct {
	DB *gorm.DB
}

func NewHomeSectionController(db *gorm.DB) *HomeSectionController {
	return &HomeSectionController{DB: db}
}

func (h *HomeSectionController) ordered(tx *gorm.DB) ([]secModel.HomeSectionModel, error) {
	var rows []secModel.HomeSectionModel
	err := tx.Order("home_section_sort_order ASC, home_section_created_at ASC").Find(&rows).Error
	return rows, err
}

// GET /api/a/home-sections
func (h *HomeSectionController) List(c *fiber.Ctx) error {
	rows, err := h.ordered(h.DB.WithContext(c.UserContext()))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", secDTO.FromModels(rows))
}

// GET /api/public/home-sections
func (h *HomeSectionController) PublicList(c *fiber.Ctx) error {
	rows, err := h.ordered(h.DB.WithContext(c.UserContext()).Where("home_section_is_visible = ?", true))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=60")
	return helper.JsonOK(c, "ok", secDTO.FromModels(rows))
}

// POST /api/a/home-sections
func (h *HomeSectionController) Create(c *fiber.Ctx) error {
	var req secDTO.CreateHomeSectionRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}

	var next int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&secModel.HomeSectionModel{}).
		Select("COALESCE(MAX(home_section_sort_order) + 1, 0)").
		Scan(&next).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	m := req.ToModel(int(next))
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "home_section_key already exists")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Home section created", secDTO.FromModel(m))
}

// PATCH /api/a/home-sections/:id
func (h *HomeSectionController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req secDTO.PatchHomeSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var m secModel.HomeSectionModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "home_section_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := req.ApplyToModel(&m); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "home_section_key already exists")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Home section updated", secDTO.FromModel(&m))
}

// PATCH /api/a/home-sections/order  {ids: [...]}
func (h *HomeSectionController) Reorder(c *fiber.Ctx) error {
	var req secDTO.ReorderRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}

	var applied []secService.OrderChange
	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		current, err := h.ordered(tx)
		if err != nil {
			return err
		}
		changes, err := secService.PlanReorder(current, req.IDs)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		for _, ch := range changes {
			if err := tx.Model(&secModel.HomeSectionModel{}).
				Where("home_section_id = ?", ch.ID).
				Update("home_section_sort_order", ch.SortOrder).Error; err != nil {
				return err
			}
		}
		applied = changes
		return nil
	})
	if err != nil {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			log.Printf("[home-sections] reorder failed: %v", err)
		}
		return helper.FromFiberError(c, err)
	}

	rows, err := h.ordered(h.DB.WithContext(c.UserContext()))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Home sections reordered", fiber.Map{
		"changed": len(applied),
		"items":   secDTO.FromModels(rows),
	})
}

// DELETE /api/a/home-sections/:id
func (h *HomeSectionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := h.DB.WithContext(c.UserContext()).Where("home_section_id = ?", id).Delete(&secModel.HomeSectionModel{})
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Home section not found")
	}
	return helper.JsonDeleted(c, "Home section deleted", fiber.Map{"home_section_id": id})
}

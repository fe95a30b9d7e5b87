// file: internals/features/users/managers/controller/manager_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aptModel "aptads_backend/internals/features/apartments/apartments/model"
	mgrDTO "aptads_backend/internals/features/users/managers/dto"
	mgrModel "aptads_backend/internals/features/users/managers/model"
	helper "aptads_backend/internals/helpers"
)

type ManagerController struct {
	DB *gorm.DB
}

func NewManagerController(db *gorm.DB) *ManagerController {
	return &ManagerController{DB: db}
}

var managerSortColumns = map[string]string{
	"name":       "manager_name",
	"created_at": "manager_created_at",
}

func (h *ManagerController) ensureApartment(c *fiber.Ctx, id uuid.UUID) error {
	var n int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&aptModel.ApartmentModel{}).
		Where("apartment_id = ?", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Apartment not found")
	}
	return nil
}

// GET /api/a/managers
func (h *ManagerController) List(c *fiber.Ctx) error {
	var q mgrDTO.ListManagersQuery
	if err := helper.ValidateQuery(c, &q); err != nil {
		return helper.RespondBindError(c, err)
	}
	p := helper.ParseFiber(c, "name", "asc", helper.AdminOpts)
	order, err := p.SafeOrderClause(managerSortColumns, "name")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.WithContext(c.UserContext()).Model(&mgrModel.ManagerModel{})
	if q.ApartmentID != nil {
		tx = tx.Where("manager_apartment_id = ?", *q.ApartmentID)
	}
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + helper.EscapeLike(s) + "%"
		tx = tx.Where("manager_name ILIKE ? OR manager_phone ILIKE ?", like, like)
	}
	if q.IsActive != nil {
		tx = tx.Where("manager_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []mgrModel.ManagerModel
	if err := tx.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", mgrDTO.FromModels(rows), helper.BuildMeta(total, len(rows), p))
}

// GET /api/a/managers/:id
func (h *ManagerController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m mgrModel.ManagerModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "manager_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", mgrDTO.FromModel(&m))
}

// POST /api/a/managers
func (h *ManagerController) Create(c *fiber.Ctx) error {
	var req mgrDTO.CreateManagerRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}
	if err := h.ensureApartment(c, req.ManagerApartmentID); err != nil {
		return helper.FromFiberError(c, err)
	}
	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Manager created", mgrDTO.FromModel(m))
}

// PATCH /api/a/managers/:id
func (h *ManagerController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req mgrDTO.PatchManagerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	var m mgrModel.ManagerModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "manager_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := req.ApplyToModel(&m); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.ManagerApartmentID.ShouldUpdate() {
		if err := h.ensureApartment(c, m.ManagerApartmentID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Manager updated", mgrDTO.FromModel(&m))
}

// DELETE /api/a/managers/:id
func (h *ManagerController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := h.DB.WithContext(c.UserContext()).Where("manager_id = ?", id).Delete(&mgrModel.ManagerModel{})
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Manager not found")
	}
	return helper.JsonDeleted(c, "Manager deleted", fiber.Map{"manager_id": id})
}

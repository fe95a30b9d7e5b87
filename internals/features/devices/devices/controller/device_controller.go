// file: internals/features/devices/devices/controller/device_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aptModel "aptads_backend/internals/features/apartments/apartments/model"
	devDTO "aptads_backend/internals/features/devices/devices/dto"
	devModel "aptads_backend/internals/features/devices/devices/model"
	devService "aptads_backend/internals/features/devices/devices/service"
	helper "aptads_backend/internals/helpers"
)

type DeviceController struct {
	DB *gorm.DB
}

func NewDeviceController(db *gorm.DB) *DeviceController {
	return &DeviceController{DB: db}
}

var deviceSortColumns = map[string]string{
	"serial":     "device_serial",
	"last_seen":  "device_last_seen_at",
	"created_at": "device_created_at",
}

func (h *DeviceController) ensureApartment(c *fiber.Ctx, id uuid.UUID) error {
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

// GET /api/a/devices?apartment_id=&q=&is_active=
func (h *DeviceController) List(c *fiber.Ctx) error {
	var q devDTO.ListDevicesQuery
	if err := helper.ValidateQuery(c, &q); err != nil {
		return helper.RespondBindError(c, err)
	}
	p := helper.ParseFiber(c, "serial", "asc", helper.AdminOpts)
	order, err := p.SafeOrderClause(deviceSortColumns, "serial")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.WithContext(c.UserContext()).Model(&devModel.DeviceModel{})
	if q.ApartmentID != nil {
		tx = tx.Where("device_apartment_id = ?", *q.ApartmentID)
	}
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + helper.EscapeLike(s) + "%"
		tx = tx.Where("device_serial ILIKE ? OR device_building ILIKE ? OR device_place ILIKE ?", like, like, like)
	}
	if q.IsActive != nil {
		tx = tx.Where("device_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []devModel.DeviceModel
	if err := tx.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", devDTO.FromModels(rows), helper.BuildMeta(total, len(rows), p))
}

// GET /api/a/apartments/:id/devices/tree
func (h *DeviceController) Tree(c *fiber.Ctx) error {
	aptID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []devModel.DeviceModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("device_apartment_id = ?", aptID).
		Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"apartment_id": aptID,
		"total":        len(rows),
		"buildings":    devService.BuildDeviceTree(rows),
	})
}

// GET /api/a/devices/:id
func (h *DeviceController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m devModel.DeviceModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "device_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", devDTO.FromModel(&m))
}

// POST /api/a/devices
func (h *DeviceController) Create(c *fiber.Ctx) error {
	var req devDTO.CreateDeviceRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}
	if err := h.ensureApartment(c, req.DeviceApartmentID); err != nil {
		return helper.FromFiberError(c, err)
	}
	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Device created", devDTO.FromModel(m))
}

// PATCH /api/a/devices/:id
func (h *DeviceController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req devDTO.PatchDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	var m devModel.DeviceModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "device_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := req.ApplyToModel(&m); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.DeviceApartmentID.ShouldUpdate() {
		if err := h.ensureApartment(c, m.DeviceApartmentID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Device updated", devDTO.FromModel(&m))
}

// DELETE /api/a/devices/:id (soft delete)
func (h *DeviceController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := h.DB.WithContext(c.UserContext()).Where("device_id = ?", id).Delete(&devModel.DeviceModel{})
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Device not found")
	}
	return helper.JsonDeleted(c, "Device deleted", fiber.Map{"device_id": id})
}

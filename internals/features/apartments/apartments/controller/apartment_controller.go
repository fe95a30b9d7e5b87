// file: internals/features/apartments/apartments/controller/apartment_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aptDTO "aptads_backend/internals/features/apartments/apartments/dto"
	aptModel "aptads_backend/internals/features/apartments/apartments/model"
	aptService "aptads_backend/internals/features/apartments/apartments/service"
	advService "aptads_backend/internals/features/advertisers/advertisers/service"
	helper "aptads_backend/internals/helpers"
)

type ApartmentController struct {
	DB *gorm.DB
}

func NewApartmentController(db *gorm.DB) *ApartmentController {
	return &ApartmentController{DB: db}
}

var apartmentSortColumns = map[string]string{
	"name":       "apartment_name",
	"households": "apartment_household_count",
	"created_at": "apartment_created_at",
}

/* ================= Handlers ================= */

// POST /api/a/apartments
func (h *ApartmentController) Create(c *fiber.Ctx) error {
	var req aptDTO.CreateApartmentRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Apartment created", aptDTO.FromModel(m))
}

// GET /api/a/apartments
func (h *ApartmentController) List(c *fiber.Ctx) error {
	var q aptDTO.ListApartmentsQuery
	if err := helper.ValidateQuery(c, &q); err != nil {
		return helper.RespondBindError(c, err)
	}
	p := helper.ParseFiber(c, "name", "asc", helper.AdminOpts)
	order, err := p.SafeOrderClause(apartmentSortColumns, "name")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.WithContext(c.UserContext()).Model(&aptModel.ApartmentModel{})
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + helper.EscapeLike(s) + "%"
		tx = tx.Where("apartment_name ILIKE ? OR apartment_address ILIKE ?", like, like)
	}
	if q.IsActive != nil {
		tx = tx.Where("apartment_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []aptModel.ApartmentModel
	if err := tx.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", aptDTO.FromModels(rows), helper.BuildMeta(total, len(rows), p))
}

// GET /api/a/apartments/nearby?lat=&lng=&precision=
func (h *ApartmentController) Nearby(c *fiber.Ctx) error {
	var q aptDTO.NearbyQuery
	if err := helper.ValidateQuery(c, &q); err != nil {
		return helper.RespondBindError(c, err)
	}
	precision := aptService.ClampPrecision(q.Precision)
	cells := aptService.NearbyCells(q.Lat, q.Lng, precision)

	var rows []aptModel.ApartmentModel
	if err := h.DB.WithContext(c.UserContext()).
		Where("apartment_geohash IS NOT NULL AND LEFT(apartment_geohash, ?) IN ?", precision, cells).
		Order("apartment_name ASC").
		Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"cells":      cells,
		"precision":  precision,
		"apartments": aptDTO.FromModels(rows),
	})
}

// GET /api/a/apartments/:id
func (h *ApartmentController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m aptModel.ApartmentModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "apartment_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", aptDTO.FromModel(&m))
}

// PATCH /api/a/apartments/:id
func (h *ApartmentController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req aptDTO.PatchApartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var out aptModel.ApartmentModel
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "apartment_id = ?", id).Error; err != nil {
			return err
		}
		if err := req.ApplyToModel(&out); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		if err := tx.Save(&out).Error; err != nil {
			return err
		}
		if req.TagsAffected() {
			n, err := advService.RebuildForApartment(c.UserContext(), tx, id)
			if err != nil {
				return err
			}
			log.Printf("[APARTMENT] %s renamed/moved, %d advertiser tag sets rebuilt", id, n)
		}
		return nil
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Apartment updated", aptDTO.FromModel(&out))
}

// DELETE /api/a/apartments/:id (soft delete)
func (h *ApartmentController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("apartment_id = ?", id).Delete(&aptModel.ApartmentModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		_, err := advService.RebuildForApartment(c.UserContext(), tx, id)
		return err
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Apartment deleted", fiber.Map{"apartment_id": id})
}

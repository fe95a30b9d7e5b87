// file: internals/features/advertisers/advertisers/controller/advertiser_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	advDTO "aptads_backend/internals/features/advertisers/advertisers/dto"
	advModel "aptads_backend/internals/features/advertisers/advertisers/model"
	advService "aptads_backend/internals/features/advertisers/advertisers/service"
	helper "aptads_backend/internals/helpers"
	"aptads_backend/internals/helpers/dbtime"
)

type AdvertiserController struct {
	DB *gorm.DB
}

func NewAdvertiserController(db *gorm.DB) *AdvertiserController {
	return &AdvertiserController{DB: db}
}

var advertiserSortColumns = map[string]string{
	"name":         "advertiser_business_name",
	"contract_end": "advertiser_contract_end_date",
	"created_at":   "advertiser_created_at",
}

/* ================= Handlers ================= */

// POST /api/a/advertisers
func (h *AdvertiserController) Create(c *fiber.Ctx) error {
	var req advDTO.CreateAdvertiserRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}
	m, err := req.ToModel(dbtime.AppLocation())
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	ctx := c.UserContext()
	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := advService.Recompute(ctx, tx, m); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Advertiser created", advDTO.FromModel(m))
}

// GET /api/a/advertisers?q=&kind=&is_active=
func (h *AdvertiserController) List(c *fiber.Ctx) error {
	var q advDTO.ListAdvertisersQuery
	if err := helper.ValidateQuery(c, &q); err != nil {
		return helper.RespondBindError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	order, err := p.SafeOrderClause(advertiserSortColumns, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.WithContext(c.UserContext()).Model(&advModel.AdvertiserModel{})
	if term := advService.NormalizeQuery(q.Q); term != "" {
		// exact tag hit (uses the GIN index) or substring of any tag
		tx = tx.Where(
			"advertiser_search_tags @> ARRAY[?]::text[] OR EXISTS (SELECT 1 FROM unnest(advertiser_search_tags) AS t WHERE replace(t, ' ', '') ILIKE ?)",
			term, "%"+helper.EscapeLike(term)+"%",
		)
	}
	if q.Kind != "" {
		tx = tx.Where("advertiser_kind = ?", q.Kind)
	}
	if q.IsActive != nil {
		tx = tx.Where("advertiser_is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []advModel.AdvertiserModel
	if err := tx.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", advDTO.FromModels(rows), helper.BuildMeta(total, len(rows), p))
}

// GET /api/a/advertisers/:id
func (h *AdvertiserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m advModel.AdvertiserModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "advertiser_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", advDTO.FromModel(&m))
}

// PATCH /api/a/advertisers/:id
func (h *AdvertiserController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req advDTO.PatchAdvertiserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	ctx := c.UserContext()
	var m advModel.AdvertiserModel
	err = h.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "advertiser_id = ?", id).Error; err != nil {
			return err
		}
		if err := req.ApplyToModel(&m, dbtime.AppLocation()); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		if err := advService.Recompute(ctx, tx, &m); err != nil {
			return err
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Advertiser updated", advDTO.FromModel(&m))
}

// DELETE /api/a/advertisers/:id (soft delete)
func (h *AdvertiserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := h.DB.WithContext(c.UserContext()).
		Where("advertiser_id = ?", id).
		Delete(&advModel.AdvertiserModel{})
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Advertiser not found")
	}
	return helper.JsonDeleted(c, "Advertiser deleted", fiber.Map{"advertiser_id": id})
}

// POST /api/a/advertisers/:id/search-tags/rebuild
func (h *AdvertiserController) RebuildTags(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	m, err := advService.RebuildOne(c.UserContext(), h.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Search tags rebuilt", advDTO.FromModel(m))
}

// POST /api/a/advertisers/search-tags/rebuild
func (h *AdvertiserController) RebuildAllTags(c *fiber.Ctx) error {
	n, err := advService.RebuildAll(c.UserContext(), h.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Search tags rebuilt", fiber.Map{"rebuilt": n})
}

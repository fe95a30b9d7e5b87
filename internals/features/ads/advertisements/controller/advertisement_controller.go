// file: internals/features/ads/advertisements/controller/advertisement_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	adDTO "aptads_backend/internals/features/ads/advertisements/dto"
	adModel "aptads_backend/internals/features/ads/advertisements/model"
	adRepo "aptads_backend/internals/features/ads/advertisements/repository"
	adService "aptads_backend/internals/features/ads/advertisements/service"
	"aptads_backend/internals/features/ads/status"
	helper "aptads_backend/internals/helpers"
	"aptads_backend/internals/helpers/dbtime"
)

type AdvertisementController struct {
	DB *gorm.DB
}

func NewAdvertisementController(db *gorm.DB) *AdvertisementController {
	return &AdvertisementController{DB: db}
}

type listQuery struct {
	Status       string `query:"status"` // csv
	AdvertiserID string `query:"advertiser_id"`
	Q            string `query:"q"`
	ActiveOnly   bool   `query:"active_only"`
}

// statusOptions pins end-of-day math to the app timezone.
func statusOptions(v status.Options) status.Options {
	v.Location = dbtime.AppLocation()
	return v
}

/* ================= Helpers ================= */

func (h *AdvertisementController) ensureAdvertiser(c *fiber.Ctx, id uuid.UUID) error {
	ok, err := adRepo.AdvertiserExists(c.UserContext(), h.DB, id)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Advertiser not found")
	}
	return nil
}

func (h *AdvertisementController) respondRow(c *fiber.Ctx, id uuid.UUID, send func(*fiber.Ctx, string, any) error, msg string) error {
	row, err := adRepo.GetRow(c.UserContext(), h.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return send(c, msg, adDTO.FromRow(*row, dbtime.Now(c), statusOptions(status.Variant4)))
}

// list runs load → classify → filter → sort → page.
func (h *AdvertisementController) list(c *fiber.Ctx, opts status.Options, scope *uuid.UUID) error {
	var q listQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	filter, err := adService.NewAdFilter(helper.SplitCSV(q.Status), q.AdvertiserID, q.Q, q.ActiveOnly, opts)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if scope != nil {
		filter = filter.WithAdvertiser(*scope)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	rows, err := adRepo.ListRows(c.UserContext(), h.DB, filter.AdvertiserID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	decorated := adDTO.FromRows(rows, dbtime.Now(c), statusOptions(opts))
	counts := adService.CountByStatus(adService.ApplyAdFilter(decorated, filter.WithoutStatuses()), opts)
	filtered := adService.ApplyAdFilter(decorated, filter)
	adService.SortRows(filtered, p.SortBy, p.SortOrder == "desc")

	page, meta := helper.PageSlice(filtered, p)
	return helper.JsonList(c, "ok", fiber.Map{
		"items":         page,
		"status_counts": counts,
	}, meta)
}

/* ================= Handlers ================= */

// GET /api/a/advertisements?status=active,scheduled&advertiser_id=&q=&active_only=
func (h *AdvertisementController) List(c *fiber.Ctx) error {
	return h.list(c, status.Variant4, nil)
}

// GET /api/a/advertisers/:id/advertisements (5-state, with expiring window)
func (h *AdvertisementController) ListByAdvertiser(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.list(c, status.Variant5, &id)
}

// GET /api/a/advertisements/:id
func (h *AdvertisementController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.respondRow(c, id, helper.JsonOK, "ok")
}

// POST /api/a/advertisements
func (h *AdvertisementController) Create(c *fiber.Ctx) error {
	var req adDTO.CreateAdvertisementRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}
	m, err := req.ToModel(dbtime.AppLocation())
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := h.ensureAdvertiser(c, m.AdvertisementAdvertiserID); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.respondRow(c, m.AdvertisementID, helper.JsonCreated, "Advertisement created")
}

// PATCH /api/a/advertisements/:id
func (h *AdvertisementController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req adDTO.PatchAdvertisementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var m adModel.AdvertisementModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "advertisement_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := req.ApplyToModel(&m, dbtime.AppLocation()); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.AdvertisementAdvertiserID.ShouldUpdate() {
		if err := h.ensureAdvertiser(c, m.AdvertisementAdvertiserID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.respondRow(c, id, helper.JsonUpdated, "Advertisement updated")
}

// DELETE /api/a/advertisements/:id (soft delete)
func (h *AdvertisementController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	res := h.DB.WithContext(c.UserContext()).
		Where("advertisement_id = ?", id).
		Delete(&adModel.AdvertisementModel{})
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Advertisement not found")
	}
	return helper.JsonDeleted(c, "Advertisement deleted", fiber.Map{"advertisement_id": id})
}

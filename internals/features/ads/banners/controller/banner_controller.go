// file: internals/features/ads/banners/controller/banner_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	adRepo "aptads_backend/internals/features/ads/advertisements/repository"
	bannerDTO "aptads_backend/internals/features/ads/banners/dto"
	bannerModel "aptads_backend/internals/features/ads/banners/model"
	bannerRepo "aptads_backend/internals/features/ads/banners/repository"
	bannerService "aptads_backend/internals/features/ads/banners/service"
	"aptads_backend/internals/features/ads/status"
	helper "aptads_backend/internals/helpers"
	"aptads_backend/internals/helpers/dbtime"
	"aptads_backend/internals/helpers/storage"
)

const uploadDir = "banners"

type BannerController struct {
	DB   *gorm.DB
	Blob storage.BlobService // nil when OSS is not configured
}

func NewBannerController(db *gorm.DB, blob storage.BlobService) *BannerController {
	return &BannerController{DB: db, Blob: blob}
}

type listQuery struct {
	Status     string `query:"status"`
	Position   string `query:"position"`
	Q          string `query:"q"`
	ActiveOnly bool   `query:"active_only"`
}

func statusOptions() status.Options {
	o := status.Variant4
	o.Location = dbtime.AppLocation()
	return o
}

/* ================= Helpers ================= */

func (h *BannerController) ensureAdvertiser(c *fiber.Ctx, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	ok, err := adRepo.AdvertiserExists(c.UserContext(), h.DB, *id)
	if err != nil {
		return err
	}
	if !ok {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Advertiser not found")
	}
	return nil
}

func (h *BannerController) respondRow(c *fiber.Ctx, id uuid.UUID, send func(*fiber.Ctx, string, any) error, msg string) error {
	row, err := bannerRepo.GetRow(c.UserContext(), h.DB, id)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return send(c, msg, bannerDTO.FromRow(*row, dbtime.Now(c), statusOptions()))
}

// best-effort; a leaked object is preferable to a failed request
func (h *BannerController) deleteObjects(c *fiber.Ctx, keys ...*string) {
	if h.Blob == nil {
		return
	}
	for _, k := range keys {
		if k == nil || *k == "" {
			continue
		}
		if err := h.Blob.DeleteByKey(c.UserContext(), *k); err != nil {
			log.Printf("[BANNER] delete object %s failed: %v", *k, err)
		}
	}
}

/* ================= Handlers ================= */

// GET /api/a/banners?status=&position=&q=&active_only=
func (h *BannerController) List(c *fiber.Ctx) error {
	var q listQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid query")
	}
	filter, err := bannerService.NewBannerFilter(helper.SplitCSV(q.Status), q.Position, q.Q, q.ActiveOnly)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	p := helper.ParseFiber(c, "sort_order", "asc", helper.AdminOpts)

	rows, err := bannerRepo.ListRows(c.UserContext(), h.DB, filter.Position)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	items := bannerService.ApplyBannerFilter(bannerDTO.FromRows(rows, dbtime.Now(c), statusOptions()), filter)
	bannerService.SortForDisplay(items)

	page, meta := helper.PageSlice(items, p)
	return helper.JsonList(c, "ok", page, meta)
}

// GET /api/public/banners?position= (currently active only)
func (h *BannerController) PublicList(c *fiber.Ctx) error {
	filter, err := bannerService.NewBannerFilter([]string{string(status.Active)}, c.Query("position"), "", true)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	rows, err := bannerRepo.ListRows(c.UserContext(), h.DB, filter.Position)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	items := bannerService.ApplyBannerFilter(bannerDTO.FromRows(rows, dbtime.Now(c), statusOptions()), filter)
	bannerService.SortForDisplay(items)

	c.Set(fiber.HeaderCacheControl, "public, max-age=60")
	return helper.JsonOK(c, "ok", items)
}

// GET /api/a/banners/:id
func (h *BannerController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.respondRow(c, id, helper.JsonOK, "ok")
}

// POST /api/a/banners
func (h *BannerController) Create(c *fiber.Ctx) error {
	var req bannerDTO.CreateBannerRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}
	m, err := req.ToModel(dbtime.AppLocation())
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := h.ensureAdvertiser(c, m.BannerAdvertiserID); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.respondRow(c, m.BannerID, helper.JsonCreated, "Banner created")
}

// PATCH /api/a/banners/:id
func (h *BannerController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req bannerDTO.PatchBannerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var m bannerModel.BannerModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "banner_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := req.ApplyToModel(&m, dbtime.AppLocation()); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if req.BannerAdvertiserID.ShouldUpdate() {
		if err := h.ensureAdvertiser(c, m.BannerAdvertiserID); err != nil {
			return helper.FromFiberError(c, err)
		}
	}
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return h.respondRow(c, id, helper.JsonUpdated, "Banner updated")
}

// POST /api/a/banners/:id/image (multipart: image|file|photo)
func (h *BannerController) UploadImage(c *fiber.Ctx) error {
	if h.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Image storage is not configured")
	}
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m bannerModel.BannerModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "banner_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}

	fh, err := storage.GetImageFile(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if fh == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Image file is required")
	}

	up, err := h.Blob.UploadImage(c.UserContext(), uploadDir, fh)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	oldImage, oldThumb := m.BannerImageObjectKey, m.BannerThumbnailObjectKey
	if err := h.DB.WithContext(c.UserContext()).Model(&m).Updates(map[string]any{
		"banner_image_url":            up.URL,
		"banner_image_object_key":     up.Key,
		"banner_thumbnail_url":        up.ThumbnailURL,
		"banner_thumbnail_object_key": up.ThumbnailKey,
	}).Error; err != nil {
		h.deleteObjects(c, &up.Key, &up.ThumbnailKey)
		return helper.FromFiberError(c, err)
	}
	h.deleteObjects(c, oldImage, oldThumb)

	return h.respondRow(c, id, helper.JsonUpdated, "Banner image uploaded")
}

// DELETE /api/a/banners/:id (soft delete + object cleanup)
func (h *BannerController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m bannerModel.BannerModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "banner_id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	h.deleteObjects(c, m.BannerImageObjectKey, m.BannerThumbnailObjectKey)
	return helper.JsonDeleted(c, "Banner deleted", fiber.Map{"banner_id": id})
}

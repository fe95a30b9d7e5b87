// file: internals/features/users/users/controller/user_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "aptads_backend/internals/features/users/users/dto"
	userModel "aptads_backend/internals/features/users/users/model"
	helper "aptads_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var userSortColumns = map[string]string{
	"email":      "email",
	"user_name":  "user_name",
	"last_login": "last_login_at",
	"created_at": "created_at",
}

// GET /api/a/users
func (h *UserController) List(c *fiber.Ctx) error {
	var q userDTO.ListUsersQuery
	if err := helper.ValidateQuery(c, &q); err != nil {
		return helper.RespondBindError(c, err)
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	order, err := p.SafeOrderClause(userSortColumns, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	tx := h.DB.WithContext(c.UserContext()).Model(&userModel.UserModel{})
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + helper.EscapeLike(s) + "%"
		tx = tx.Where("email ILIKE ? OR user_name ILIKE ?", like, like)
	}
	if q.Role != "" {
		tx = tx.Where("role = ?", q.Role)
	}
	if q.IsActive != nil {
		tx = tx.Where("is_active = ?", *q.IsActive)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	var rows []userModel.UserModel
	if err := tx.Order(order).Limit(p.Limit()).Offset(p.Offset()).Find(&rows).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "ok", userDTO.FromModels(rows), helper.BuildMeta(total, len(rows), p))
}

// GET /api/a/users/:id
func (h *UserController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var m userModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", userDTO.FromModel(&m))
}

// POST /api/a/users
func (h *UserController) Create(c *fiber.Ctx) error {
	var req userDTO.CreateUserRequest
	if err := helper.BindAndValidate(c, &req); err != nil {
		return helper.RespondBindError(c, err)
	}
	m, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "User created", userDTO.FromModel(m))
}

// PATCH /api/a/users/:id
func (h *UserController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req userDTO.PatchUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var m userModel.UserModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "id = ?", id).Error; err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := req.ApplyToModel(&m); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	// own account: no self-demotion / self-lock
	if me, err := helper.GetUserID(c); err == nil && me == m.ID {
		if req.Role.ShouldUpdate() && m.Role != helper.GetUserRole(c) {
			return helper.JsonError(c, fiber.StatusForbidden, "Cannot change your own role")
		}
		if req.IsActive.ShouldUpdate() && !m.IsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Cannot deactivate your own account")
		}
	}

	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "User updated", userDTO.FromModel(&m))
}

// DELETE /api/a/users/:id
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if me, err := helper.GetUserID(c); err == nil && me == id {
		return helper.JsonError(c, fiber.StatusForbidden, "Cannot delete your own account")
	}
	res := h.DB.WithContext(c.UserContext()).Where("id = ?", id).Delete(&userModel.UserModel{})
	if res.Error != nil {
		return helper.FromFiberError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
}

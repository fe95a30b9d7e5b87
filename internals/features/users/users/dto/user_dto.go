package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"aptads_backend/internals/constants"
	"aptads_backend/internals/features/users/users/model"
	helper "aptads_backend/internals/helpers"
)

var ErrInvalidRole = errors.New("role must be one of superadmin, admin, manager")

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,oneof=superadmin admin manager"`
	IsActive *bool  `json:"is_active"`
}

func (r *CreateUserRequest) ToModel() (*model.UserModel, error) {
	if !constants.IsValidRole(r.Role) {
		return nil, ErrInvalidRole
	}
	hash, err := HashPassword(r.Password)
	if err != nil {
		return nil, err
	}
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &model.UserModel{
		UserName: strings.TrimSpace(r.UserName),
		Email:    NormalizeEmail(r.Email),
		Password: hash,
		Role:     r.Role,
		IsActive: active,
	}, nil
}

type PatchUserRequest struct {
	UserName helper.UpdateField[string] `json:"user_name"`
	Email    helper.UpdateField[string] `json:"email"`
	Password helper.UpdateField[string] `json:"password"`
	Role     helper.UpdateField[string] `json:"role"`
	IsActive helper.UpdateField[bool]   `json:"is_active"`
}

func (p *PatchUserRequest) ApplyToModel(m *model.UserModel) error {
	if p.UserName.ShouldUpdate() {
		n := strings.TrimSpace(p.UserName.Val())
		if n == "" {
			return errors.New("user_name cannot be empty")
		}
		m.UserName = n
	}
	if p.Email.ShouldUpdate() {
		e := NormalizeEmail(p.Email.Val())
		if err := helper.Validator().Var(e, "required,email"); err != nil {
			return errors.New("email is invalid")
		}
		m.Email = e
	}
	if p.Password.ShouldUpdate() {
		pw := p.Password.Val()
		if len(pw) < 8 || len(pw) > 72 {
			return errors.New("password must be 8 to 72 characters")
		}
		hash, err := HashPassword(pw)
		if err != nil {
			return err
		}
		m.Password = hash
	}
	if p.Role.ShouldUpdate() {
		if !constants.IsValidRole(p.Role.Val()) {
			return ErrInvalidRole
		}
		m.Role = p.Role.Val()
	}
	if p.IsActive.ShouldUpdate() && !p.IsActive.IsNull() {
		m.IsActive = p.IsActive.Val()
	}
	return nil
}

type ListUsersQuery struct {
	Q        string `query:"q" validate:"omitempty,max=100"`
	Role     string `query:"role" validate:"omitempty,oneof=superadmin admin manager"`
	IsActive *bool  `query:"is_active"`
}

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserName    string     `json:"user_name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromModel(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:          m.ID,
		UserName:    m.UserName,
		Email:       m.Email,
		Role:        m.Role,
		IsActive:    m.IsActive,
		LastLoginAt: m.LastLoginAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(list []model.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}

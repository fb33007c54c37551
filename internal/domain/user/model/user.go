package model

import (
	baseModel "github.com/RimshaSaif36/Classic-Decor-sub000/pkg/model"
)

// User is a storefront account. Role gates the admin endpoints.
type User struct {
	baseModel.BaseModel
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex" json:"email"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Role     string `gorm:"default:'customer'" json:"role"`
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

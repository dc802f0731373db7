package models

import "gorm.io/gorm"

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique;not null"`
	Email     string `json:"email" gorm:"unique;not null"`
	Password  string `json:"-" gorm:"not null"`
	FirstName string `json:"first_name" gorm:"default:''"`
	LastName  string `json:"last_name" gorm:"default:''"`
	Role      string `json:"role" gorm:"default:'user'"` // user, admin
	IsDeleted bool   `gorm:"default:false"`
}

package domain

import "time"

// AdminUser models an administrator account. The password hash is never
// serialized; only the auth service reads it, via bcrypt comparison.
type AdminUser struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Username     string     `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Email        string     `json:"email" gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string     `json:"-" gorm:"size:128;not null"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
	IsActive     bool       `json:"is_active" gorm:"not null;default:true"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

package model

import "time"

// Roles determine which route tree a session may enter.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// PasswordHashCost is the bcrypt cost shared by every path that hashes a
// password (staff creation, demo seed, admin bootstrap).
const PasswordHashCost = 12

// User stores system users with role-based access.
// PasswordHash is write-only: it never appears in a response DTO.
type User struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(10);not null"`
	// BranchID ties staff to a branch; nil for admins
	BranchID  *int `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

package model

import "time"

type Customer struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"not null"`
	Email     *string
	Phone     *string
	BranchID  int `gorm:"index;not null"`
	CreatedAt time.Time
}

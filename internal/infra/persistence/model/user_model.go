// Package model holds the GORM row types. IDs are generated in Go, so no column
// carries a database default that GORM would try to read back.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username       string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Email          string    `gorm:"type:varchar(254);uniqueIndex;not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	UserType       string    `gorm:"type:varchar(20);not null"`
	FirstName      string    `gorm:"type:varchar(150)"`
	LastName       string    `gorm:"type:varchar(150)"`
	Phone          string    `gorm:"type:varchar(20)"`
	Address        string    `gorm:"type:text"`
	ProfilePicture string    `gorm:"type:varchar(255)"`
	Bio            string    `gorm:"type:text"`
	DateJoined     time.Time `gorm:"not null"`
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

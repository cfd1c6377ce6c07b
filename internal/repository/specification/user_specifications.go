package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// ByCredentials is an exact, case-sensitive match on both columns.
type ByCredentials struct {
	Name     string
	Password string
}

func (s ByCredentials) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ? AND password = ?", s.Name, s.Password)
}

type UserOwnedBy struct {
	UserID uuid.UUID
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

package model

import (
	"time"

	"github.com/google/uuid"
)

type Page struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotebookId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"type:varchar(100);not null"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Page) TableName() string {
	return "pages"
}

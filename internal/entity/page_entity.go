package entity

import (
	"time"

	"github.com/google/uuid"
)

type Page struct {
	Id         uuid.UUID
	NotebookId uuid.UUID
	Title      string
	Content    string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

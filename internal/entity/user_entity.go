package entity

import (
	"time"

	"github.com/google/uuid"
)

// Password is stored and returned as given; there is no hashing.
type User struct {
	Id        uuid.UUID
	Name      string
	Password  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

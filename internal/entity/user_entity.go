// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Name         string
	Nickname     *string
	Email        string
	PasswordHash string
	Role         UserRole
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

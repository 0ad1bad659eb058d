// FILE: internal/dto/auth_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponse struct {
	Id    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the signed token plus a denormalized registry
// snapshot so the client can seed its feature context without a second
// round trip.
type LoginResponse struct {
	Token    string            `json:"token"`
	User     UserResponse      `json:"user"`
	Features []FeatureResponse `json:"features"`
}

type UserResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Nickname  *string    `json:"nickname,omitempty"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// FILE: internal/dto/user_dto.go
package dto

type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Nickname *string `json:"nickname,omitempty"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *string `json:"role,omitempty"`
}

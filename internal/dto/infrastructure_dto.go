// FILE: internal/dto/infrastructure_dto.go
// DTOs for servers, service types, services and service configs
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateServerRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Host        string `json:"host" validate:"required"`
	Provider    string `json:"provider,omitempty"`
	Environment string `json:"environment,omitempty"`
}

type UpdateServerRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Host        *string `json:"host,omitempty"`
	Provider    *string `json:"provider,omitempty"`
	Environment *string `json:"environment,omitempty"`
}

type ServerResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Host        string    `json:"host"`
	Provider    string    `json:"provider,omitempty"`
	Environment string    `json:"environment"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateServiceTypeRequest struct {
	Name string `json:"name" validate:"required"`
}

type ServiceTypeResponse struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CreateServiceRequest struct {
	ServerId      uuid.UUID `json:"serverId" validate:"required"`
	ServiceTypeId uuid.UUID `json:"serviceTypeId" validate:"required"`
	Name          string    `json:"name" validate:"required"`
	Description   string    `json:"description,omitempty"`
	Version       string    `json:"version,omitempty"`
	Status        string    `json:"status,omitempty"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Version     *string `json:"version,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type ServiceResponse struct {
	Id            uuid.UUID `json:"id"`
	ServerId      uuid.UUID `json:"serverId"`
	ServiceTypeId uuid.UUID `json:"serviceTypeId"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Version       string    `json:"version,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateServiceConfigRequest struct {
	ServiceId uuid.UUID `json:"serviceId" validate:"required"`
	Key       string    `json:"key" validate:"required"`
	Value     string    `json:"value" validate:"required"`
	IsSecret  bool      `json:"isSecret"`
}

type UpdateServiceConfigRequest struct {
	Value    *string `json:"value,omitempty"`
	IsSecret *bool   `json:"isSecret,omitempty"`
}

// ServiceConfigResponse redacts Value when IsSecret and the caller is not
// ROOT; the controller decides, the DTO just carries the flag.
type ServiceConfigResponse struct {
	Id        uuid.UUID `json:"id"`
	ServiceId uuid.UUID `json:"serviceId"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	IsSecret  bool      `json:"isSecret"`
	UpdatedAt time.Time `json:"updatedAt"`
}

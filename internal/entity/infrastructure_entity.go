// FILE: internal/entity/infrastructure_entity.go
// Domain entities for the monitored infrastructure inventory
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Server struct {
	Id          uuid.UUID
	Name        string
	Description string
	Host        string
	Provider    string // aws, gcp, on-prem, etc
	Environment string // dev, staging, prod
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ServiceType struct {
	Id        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Service struct {
	Id            uuid.UUID
	ServerId      uuid.UUID
	ServiceTypeId uuid.UUID
	Name          string
	Description   string
	Version       string
	Status        string // running, stopped, degraded
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ServiceConfig struct {
	Id        uuid.UUID
	ServiceId uuid.UUID
	Key       string
	Value     string
	IsSecret  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

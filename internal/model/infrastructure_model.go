// FILE: internal/model/infrastructure_model.go
// GORM models for the monitored infrastructure inventory
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Server struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:text"`
	Description string    `gorm:"type:text"`
	Host        string    `gorm:"type:text;not null"`
	Provider    string    `gorm:"type:varchar(50)"`
	Environment string    `gorm:"type:varchar(50);not null;default:'prod'"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (Server) TableName() string {
	return "servers"
}

type ServiceType struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string         `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ServiceType) TableName() string {
	return "service_types"
}

type Service struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ServerId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	ServiceTypeId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name          string         `gorm:"type:text;not null"`
	Description   string         `gorm:"type:text"`
	Version       string         `gorm:"type:varchar(50)"`
	Status        string         `gorm:"type:varchar(20);default:'stopped'"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Service) TableName() string {
	return "services"
}

type ServiceConfig struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ServiceId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Key       string         `gorm:"type:text;not null"`
	Value     string         `gorm:"type:text;not null"`
	IsSecret  bool           `gorm:"default:false"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ServiceConfig) TableName() string {
	return "service_configs"
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog rows are append-only; no soft delete, history is never erased.
type AuditLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    *uuid.UUID     `gorm:"type:uuid;index"`
	Action    string         `gorm:"type:varchar(100);not null;index"`
	Details   datatypes.JSON `gorm:"type:jsonb"`
	IpAddress string         `gorm:"type:varchar(45)"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (AuditLog) TableName() string {
	return "logs"
}

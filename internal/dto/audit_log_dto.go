// FILE: internal/dto/audit_log_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	Id        uuid.UUID              `json:"id"`
	UserId    *uuid.UUID             `json:"userId,omitempty"`
	Action    string                 `json:"action"`
	Details   map[string]interface{} `json:"details,omitempty"`
	IpAddress string                 `json:"ipAddress,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
}

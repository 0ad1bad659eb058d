// FILE: internal/entity/audit_log_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records one administrative action: who did what, with which
// payload, from where.
type AuditLog struct {
	Id        uuid.UUID
	UserId    *uuid.UUID // nil for anonymous actions (failed logins etc.)
	Action    string     // LOGIN, CREATE_FEATURE, DELETE_USER, ...
	Details   map[string]interface{}
	IpAddress string
	CreatedAt time.Time
}

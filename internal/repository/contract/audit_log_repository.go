package contract

import (
	"context"

	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/repository/specification"
)

// AuditLogRepository is append-only; there is no update or delete.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AuditLog, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

// FILE: internal/service/audit_service.go
package service

import (
	"context"
	"fmt"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/pkg/apperr"
	"hestia-console-be/internal/pkg/logger"
	"hestia-console-be/internal/repository/specification"
	"hestia-console-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Actor identifies who performed a mutating operation, for the audit
// trail. UserId is nil for anonymous actions.
type Actor struct {
	UserId    *uuid.UUID
	IpAddress string
}

type IAuditService interface {
	// Record writes an audit row best-effort: a failed write is logged
	// and swallowed, never failing the operation being audited.
	Record(ctx context.Context, actor Actor, action string, details map[string]interface{})
	GetLogs(ctx context.Context, action string, limit, offset int) (*dto.AuditLogListResponse, error)
	GetLogById(ctx context.Context, id uuid.UUID) (*dto.AuditLogResponse, error)
}

type auditService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewAuditService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) IAuditService {
	return &auditService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *auditService) Record(ctx context.Context, actor Actor, action string, details map[string]interface{}) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry := &entity.AuditLog{
		Id:        uuid.New(),
		UserId:    actor.UserId,
		Action:    action,
		Details:   details,
		IpAddress: actor.IpAddress,
	}
	if err := uow.AuditLogRepository().Create(ctx, entry); err != nil {
		s.logger.Error("audit", "Failed to write audit log", map[string]interface{}{
			"action": action,
			"error":  err.Error(),
		})
	}
}

func (s *auditService) GetLogs(ctx context.Context, action string, limit, offset int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{}
	if action != "" {
		specs = append(specs, specification.ByAction{Action: action})
	}

	total, err := uow.AuditLogRepository().Count(ctx, specs...)
	if err != nil {
		return nil, err
	}

	logs, err := uow.AuditLogRepository().FindAll(ctx,
		append(specs, specification.Pagination{Limit: limit, Offset: offset})...)
	if err != nil {
		return nil, err
	}

	res := &dto.AuditLogListResponse{Total: total, Logs: make([]dto.AuditLogResponse, 0, len(logs))}
	for _, l := range logs {
		res.Logs = append(res.Logs, toAuditLogResponse(l))
	}
	return res, nil
}

func (s *auditService) GetLogById(ctx context.Context, id uuid.UUID) (*dto.AuditLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	log, err := uow.AuditLogRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if log == nil {
		return nil, fmt.Errorf("log %s: %w", id, apperr.ErrNotFound)
	}
	res := toAuditLogResponse(log)
	return &res, nil
}

func toAuditLogResponse(l *entity.AuditLog) dto.AuditLogResponse {
	return dto.AuditLogResponse{
		Id:        l.Id,
		UserId:    l.UserId,
		Action:    l.Action,
		Details:   l.Details,
		IpAddress: l.IpAddress,
		CreatedAt: l.CreatedAt,
	}
}

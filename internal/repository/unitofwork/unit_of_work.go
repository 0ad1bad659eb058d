package unitofwork

import (
	"context"

	"hestia-console-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	FeatureRepository() contract.FeatureRepository
	ServerRepository() contract.ServerRepository
	ServiceRepository() contract.ServiceRepository
	ServiceTypeRepository() contract.ServiceTypeRepository
	ServiceConfigRepository() contract.ServiceConfigRepository
	AuditLogRepository() contract.AuditLogRepository
}

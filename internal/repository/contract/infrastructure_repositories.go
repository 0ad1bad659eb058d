// FILE: internal/repository/contract/infrastructure_repositories.go
// Repository interfaces for the monitored infrastructure inventory
package contract

import (
	"context"

	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ServerRepository interface {
	Create(ctx context.Context, server *entity.Server) error
	Update(ctx context.Context, server *entity.Server) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Server, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Server, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error)
}

type ServiceTypeRepository interface {
	Create(ctx context.Context, serviceType *entity.ServiceType) error
	Update(ctx context.Context, serviceType *entity.ServiceType) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceType, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceType, error)
}

type ServiceConfigRepository interface {
	Create(ctx context.Context, config *entity.ServiceConfig) error
	Update(ctx context.Context, config *entity.ServiceConfig) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceConfig, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceConfig, error)
}

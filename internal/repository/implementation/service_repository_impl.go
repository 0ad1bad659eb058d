// FILE: internal/repository/implementation/service_repository_impl.go
// Implementations for Service, ServiceType and ServiceConfig repositories
package implementation

import (
	"context"
	"errors"

	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/mapper"
	"hestia-console-be/internal/model"
	"hestia-console-be/internal/repository/contract"
	"hestia-console-be/internal/repository/scope"
	"hestia-console-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ServiceMapper
}

func NewServiceRepository(db *gorm.DB) contract.ServiceRepository {
	return &ServiceRepositoryImpl{
		db:     db,
		mapper: mapper.NewServiceMapper(),
	}
}

func (r *ServiceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *entity.Service) error {
	m := r.mapper.ToModel(service)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*service = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *entity.Service) error {
	m := r.mapper.ToModel(service)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*service = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Service{}, id).Error
}

func (r *ServiceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Service, error) {
	var m model.Service
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ServiceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Service, error) {
	var models []*model.Service
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type ServiceTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ServiceTypeMapper
}

func NewServiceTypeRepository(db *gorm.DB) contract.ServiceTypeRepository {
	return &ServiceTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewServiceTypeMapper(),
	}
}

func (r *ServiceTypeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ServiceTypeRepositoryImpl) Create(ctx context.Context, serviceType *entity.ServiceType) error {
	m := r.mapper.ToModel(serviceType)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*serviceType = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceTypeRepositoryImpl) Update(ctx context.Context, serviceType *entity.ServiceType) error {
	m := r.mapper.ToModel(serviceType)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*serviceType = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceTypeRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceType{}, id).Error
}

func (r *ServiceTypeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceType, error) {
	var m model.ServiceType
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ServiceTypeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceType, error) {
	var models []*model.ServiceType
	query := r.applySpecifications(r.db.WithContext(ctx).Order("name ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

type ServiceConfigRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ServiceConfigMapper
}

func NewServiceConfigRepository(db *gorm.DB) contract.ServiceConfigRepository {
	return &ServiceConfigRepositoryImpl{
		db:     db,
		mapper: mapper.NewServiceConfigMapper(),
	}
}

func (r *ServiceConfigRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ServiceConfigRepositoryImpl) Create(ctx context.Context, config *entity.ServiceConfig) error {
	m := r.mapper.ToModel(config)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*config = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceConfigRepositoryImpl) Update(ctx context.Context, config *entity.ServiceConfig) error {
	m := r.mapper.ToModel(config)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*config = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServiceConfigRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ServiceConfig{}, id).Error
}

func (r *ServiceConfigRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ServiceConfig, error) {
	var m model.ServiceConfig
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ServiceConfigRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ServiceConfig, error) {
	var models []*model.ServiceConfig
	query := r.applySpecifications(r.db.WithContext(ctx).Order("key ASC"), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

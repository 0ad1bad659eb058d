// FILE: internal/service/service_service.go
// Services, service types and service config key/value pairs
package service

import (
	"context"
	"fmt"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/pkg/apperr"
	"hestia-console-be/internal/repository/specification"
	"hestia-console-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IServiceService interface {
	GetAll(ctx context.Context, serverId *uuid.UUID) ([]dto.ServiceResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error)
	Create(ctx context.Context, actor Actor, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error

	GetTypes(ctx context.Context) ([]dto.ServiceTypeResponse, error)
	CreateType(ctx context.Context, actor Actor, req *dto.CreateServiceTypeRequest) (*dto.ServiceTypeResponse, error)

	GetConfigs(ctx context.Context, serviceId uuid.UUID, includeSecrets bool) ([]dto.ServiceConfigResponse, error)
	CreateConfig(ctx context.Context, actor Actor, req *dto.CreateServiceConfigRequest) (*dto.ServiceConfigResponse, error)
	UpdateConfig(ctx context.Context, actor Actor, id uuid.UUID, req *dto.UpdateServiceConfigRequest) (*dto.ServiceConfigResponse, error)
	DeleteConfig(ctx context.Context, actor Actor, id uuid.UUID) error
}

type serviceService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      IAuditService
}

func NewServiceService(uowFactory unitofwork.RepositoryFactory, audit IAuditService) IServiceService {
	return &serviceService{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

func (s *serviceService) GetAll(ctx context.Context, serverId *uuid.UUID) ([]dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{}
	if serverId != nil {
		specs = append(specs, specification.OwnedByServer{ServerID: *serverId})
	}
	services, err := uow.ServiceRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	res := make([]dto.ServiceResponse, 0, len(services))
	for _, svc := range services {
		res = append(res, toServiceResponse(svc))
	}
	return res, nil
}

func (s *serviceService) GetById(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s: %w", id, apperr.ErrNotFound)
	}
	res := toServiceResponse(svc)
	return &res, nil
}

func (s *serviceService) Create(ctx context.Context, actor Actor, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required: %w", apperr.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	// Both owners must exist and be live.
	server, err := uow.ServerRepository().FindOne(ctx, specification.ByID{ID: req.ServerId})
	if err != nil {
		return nil, err
	}
	if server == nil {
		return nil, fmt.Errorf("server %s: %w", req.ServerId, apperr.ErrNotFound)
	}
	serviceType, err := uow.ServiceTypeRepository().FindOne(ctx, specification.ByID{ID: req.ServiceTypeId})
	if err != nil {
		return nil, err
	}
	if serviceType == nil {
		return nil, fmt.Errorf("service type %s: %w", req.ServiceTypeId, apperr.ErrNotFound)
	}

	status := req.Status
	if status == "" {
		status = "stopped"
	}
	svc := &entity.Service{
		Id:            uuid.New(),
		ServerId:      req.ServerId,
		ServiceTypeId: req.ServiceTypeId,
		Name:          req.Name,
		Description:   req.Description,
		Version:       req.Version,
		Status:        status,
	}
	if err := uow.ServiceRepository().Create(ctx, svc); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "CREATE_SERVICE", map[string]interface{}{
		"name": svc.Name, "serverId": svc.ServerId.String(),
	})

	res := toServiceResponse(svc)
	return &res, nil
}

func (s *serviceService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s: %w", id, apperr.ErrNotFound)
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Version != nil {
		svc.Version = *req.Version
	}
	if req.Status != nil {
		svc.Status = *req.Status
	}

	if err := uow.ServiceRepository().Update(ctx, svc); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "UPDATE_SERVICE", map[string]interface{}{"id": id.String()})

	res := toServiceResponse(svc)
	return &res, nil
}

func (s *serviceService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if svc == nil {
		return fmt.Errorf("service %s: %w", id, apperr.ErrNotFound)
	}

	if err := uow.ServiceRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "DELETE_SERVICE", map[string]interface{}{"id": id.String()})
	return nil
}

func (s *serviceService) GetTypes(ctx context.Context) ([]dto.ServiceTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	types, err := uow.ServiceTypeRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]dto.ServiceTypeResponse, 0, len(types))
	for _, t := range types {
		res = append(res, dto.ServiceTypeResponse{Id: t.Id, Name: t.Name})
	}
	return res, nil
}

func (s *serviceService) CreateType(ctx context.Context, actor Actor, req *dto.CreateServiceTypeRequest) (*dto.ServiceTypeResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("name is required: %w", apperr.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.ServiceTypeRepository().FindOne(ctx, specification.Filter("name", req.Name))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("service type '%s' already exists: %w", req.Name, apperr.ErrConflict)
	}

	serviceType := &entity.ServiceType{Id: uuid.New(), Name: req.Name}
	if err := uow.ServiceTypeRepository().Create(ctx, serviceType); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "CREATE_SERVICE_TYPE", map[string]interface{}{"name": req.Name})

	return &dto.ServiceTypeResponse{Id: serviceType.Id, Name: serviceType.Name}, nil
}

func (s *serviceService) GetConfigs(ctx context.Context, serviceId uuid.UUID, includeSecrets bool) ([]dto.ServiceConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	configs, err := uow.ServiceConfigRepository().FindAll(ctx, specification.OwnedByService{ServiceID: serviceId})
	if err != nil {
		return nil, err
	}
	res := make([]dto.ServiceConfigResponse, 0, len(configs))
	for _, c := range configs {
		item := toServiceConfigResponse(c)
		if c.IsSecret && !includeSecrets {
			item.Value = "********"
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *serviceService) CreateConfig(ctx context.Context, actor Actor, req *dto.CreateServiceConfigRequest) (*dto.ServiceConfigResponse, error) {
	if req.Key == "" || req.Value == "" {
		return nil, fmt.Errorf("key and value are required: %w", apperr.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	svc, err := uow.ServiceRepository().FindOne(ctx, specification.ByID{ID: req.ServiceId})
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s: %w", req.ServiceId, apperr.ErrNotFound)
	}

	config := &entity.ServiceConfig{
		Id:        uuid.New(),
		ServiceId: req.ServiceId,
		Key:       req.Key,
		Value:     req.Value,
		IsSecret:  req.IsSecret,
	}
	if err := uow.ServiceConfigRepository().Create(ctx, config); err != nil {
		return nil, err
	}

	// Secret values never reach the audit trail.
	s.audit.Record(ctx, actor, "CREATE_SERVICE_CONFIG", map[string]interface{}{
		"serviceId": req.ServiceId.String(), "key": req.Key, "isSecret": req.IsSecret,
	})

	res := toServiceConfigResponse(config)
	return &res, nil
}

func (s *serviceService) UpdateConfig(ctx context.Context, actor Actor, id uuid.UUID, req *dto.UpdateServiceConfigRequest) (*dto.ServiceConfigResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	config, err := uow.ServiceConfigRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if config == nil {
		return nil, fmt.Errorf("service config %s: %w", id, apperr.ErrNotFound)
	}

	if req.Value != nil {
		config.Value = *req.Value
	}
	if req.IsSecret != nil {
		config.IsSecret = *req.IsSecret
	}

	if err := uow.ServiceConfigRepository().Update(ctx, config); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "UPDATE_SERVICE_CONFIG", map[string]interface{}{
		"id": id.String(), "key": config.Key,
	})

	res := toServiceConfigResponse(config)
	return &res, nil
}

func (s *serviceService) DeleteConfig(ctx context.Context, actor Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	config, err := uow.ServiceConfigRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if config == nil {
		return fmt.Errorf("service config %s: %w", id, apperr.ErrNotFound)
	}

	if err := uow.ServiceConfigRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "DELETE_SERVICE_CONFIG", map[string]interface{}{
		"id": id.String(), "key": config.Key,
	})
	return nil
}

func toServiceResponse(svc *entity.Service) dto.ServiceResponse {
	return dto.ServiceResponse{
		Id:            svc.Id,
		ServerId:      svc.ServerId,
		ServiceTypeId: svc.ServiceTypeId,
		Name:          svc.Name,
		Description:   svc.Description,
		Version:       svc.Version,
		Status:        svc.Status,
		CreatedAt:     svc.CreatedAt,
		UpdatedAt:     svc.UpdatedAt,
	}
}

func toServiceConfigResponse(c *entity.ServiceConfig) dto.ServiceConfigResponse {
	return dto.ServiceConfigResponse{
		Id:        c.Id,
		ServiceId: c.ServiceId,
		Key:       c.Key,
		Value:     c.Value,
		IsSecret:  c.IsSecret,
		UpdatedAt: c.UpdatedAt,
	}
}

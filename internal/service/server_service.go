// FILE: internal/service/server_service.go
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

type IServerService interface {
	GetAll(ctx context.Context, environment string) ([]dto.ServerResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.ServerResponse, error)
	Create(ctx context.Context, actor Actor, req *dto.CreateServerRequest) (*dto.ServerResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *dto.UpdateServerRequest) (*dto.ServerResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type serverService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      IAuditService
}

func NewServerService(uowFactory unitofwork.RepositoryFactory, audit IAuditService) IServerService {
	return &serverService{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

func (s *serverService) GetAll(ctx context.Context, environment string) ([]dto.ServerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	specs := []specification.Specification{}
	if environment != "" {
		specs = append(specs, specification.ByEnvironment{Environment: environment})
	}
	servers, err := uow.ServerRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	res := make([]dto.ServerResponse, 0, len(servers))
	for _, srv := range servers {
		res = append(res, toServerResponse(srv))
	}
	return res, nil
}

func (s *serverService) GetById(ctx context.Context, id uuid.UUID) (*dto.ServerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	server, err := uow.ServerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if server == nil {
		return nil, fmt.Errorf("server %s: %w", id, apperr.ErrNotFound)
	}
	res := toServerResponse(server)
	return &res, nil
}

func (s *serverService) Create(ctx context.Context, actor Actor, req *dto.CreateServerRequest) (*dto.ServerResponse, error) {
	if req.Host == "" {
		return nil, fmt.Errorf("host is required: %w", apperr.ErrValidation)
	}
	environment := req.Environment
	if environment == "" {
		environment = "prod"
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	server := &entity.Server{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Host:        req.Host,
		Provider:    req.Provider,
		Environment: environment,
	}
	if err := uow.ServerRepository().Create(ctx, server); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "CREATE_SERVER", map[string]interface{}{
		"host": server.Host, "environment": server.Environment,
	})

	res := toServerResponse(server)
	return &res, nil
}

func (s *serverService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *dto.UpdateServerRequest) (*dto.ServerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	server, err := uow.ServerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if server == nil {
		return nil, fmt.Errorf("server %s: %w", id, apperr.ErrNotFound)
	}

	if req.Name != nil {
		server.Name = *req.Name
	}
	if req.Description != nil {
		server.Description = *req.Description
	}
	if req.Host != nil {
		server.Host = *req.Host
	}
	if req.Provider != nil {
		server.Provider = *req.Provider
	}
	if req.Environment != nil {
		server.Environment = *req.Environment
	}

	if err := uow.ServerRepository().Update(ctx, server); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "UPDATE_SERVER", map[string]interface{}{"id": id.String()})

	res := toServerResponse(server)
	return &res, nil
}

func (s *serverService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	server, err := uow.ServerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if server == nil {
		return fmt.Errorf("server %s: %w", id, apperr.ErrNotFound)
	}

	if err := uow.ServerRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "DELETE_SERVER", map[string]interface{}{"id": id.String()})
	return nil
}

func toServerResponse(s *entity.Server) dto.ServerResponse {
	return dto.ServerResponse{
		Id:          s.Id,
		Name:        s.Name,
		Description: s.Description,
		Host:        s.Host,
		Provider:    s.Provider,
		Environment: s.Environment,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

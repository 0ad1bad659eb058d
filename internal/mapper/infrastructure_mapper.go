// Mappers for the infrastructure inventory entities
package mapper

import (
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/model"
)

type ServerMapper struct{}

func NewServerMapper() *ServerMapper {
	return &ServerMapper{}
}

func (m *ServerMapper) ToEntity(mdl *model.Server) *entity.Server {
	if mdl == nil {
		return nil
	}
	return &entity.Server{
		Id:          mdl.Id,
		Name:        mdl.Name,
		Description: mdl.Description,
		Host:        mdl.Host,
		Provider:    mdl.Provider,
		Environment: mdl.Environment,
		CreatedAt:   mdl.CreatedAt,
		UpdatedAt:   mdl.UpdatedAt,
	}
}

func (m *ServerMapper) ToModel(ent *entity.Server) *model.Server {
	if ent == nil {
		return nil
	}
	return &model.Server{
		Id:          ent.Id,
		Name:        ent.Name,
		Description: ent.Description,
		Host:        ent.Host,
		Provider:    ent.Provider,
		Environment: ent.Environment,
		CreatedAt:   ent.CreatedAt,
		UpdatedAt:   ent.UpdatedAt,
	}
}

func (m *ServerMapper) ToEntities(models []*model.Server) []*entity.Server {
	entities := make([]*entity.Server, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type ServiceMapper struct{}

func NewServiceMapper() *ServiceMapper {
	return &ServiceMapper{}
}

func (m *ServiceMapper) ToEntity(mdl *model.Service) *entity.Service {
	if mdl == nil {
		return nil
	}
	return &entity.Service{
		Id:            mdl.Id,
		ServerId:      mdl.ServerId,
		ServiceTypeId: mdl.ServiceTypeId,
		Name:          mdl.Name,
		Description:   mdl.Description,
		Version:       mdl.Version,
		Status:        mdl.Status,
		CreatedAt:     mdl.CreatedAt,
		UpdatedAt:     mdl.UpdatedAt,
	}
}

func (m *ServiceMapper) ToModel(ent *entity.Service) *model.Service {
	if ent == nil {
		return nil
	}
	return &model.Service{
		Id:            ent.Id,
		ServerId:      ent.ServerId,
		ServiceTypeId: ent.ServiceTypeId,
		Name:          ent.Name,
		Description:   ent.Description,
		Version:       ent.Version,
		Status:        ent.Status,
		CreatedAt:     ent.CreatedAt,
		UpdatedAt:     ent.UpdatedAt,
	}
}

func (m *ServiceMapper) ToEntities(models []*model.Service) []*entity.Service {
	entities := make([]*entity.Service, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type ServiceTypeMapper struct{}

func NewServiceTypeMapper() *ServiceTypeMapper {
	return &ServiceTypeMapper{}
}

func (m *ServiceTypeMapper) ToEntity(mdl *model.ServiceType) *entity.ServiceType {
	if mdl == nil {
		return nil
	}
	return &entity.ServiceType{
		Id:        mdl.Id,
		Name:      mdl.Name,
		CreatedAt: mdl.CreatedAt,
		UpdatedAt: mdl.UpdatedAt,
	}
}

func (m *ServiceTypeMapper) ToModel(ent *entity.ServiceType) *model.ServiceType {
	if ent == nil {
		return nil
	}
	return &model.ServiceType{
		Id:        ent.Id,
		Name:      ent.Name,
		CreatedAt: ent.CreatedAt,
		UpdatedAt: ent.UpdatedAt,
	}
}

func (m *ServiceTypeMapper) ToEntities(models []*model.ServiceType) []*entity.ServiceType {
	entities := make([]*entity.ServiceType, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

type ServiceConfigMapper struct{}

func NewServiceConfigMapper() *ServiceConfigMapper {
	return &ServiceConfigMapper{}
}

func (m *ServiceConfigMapper) ToEntity(mdl *model.ServiceConfig) *entity.ServiceConfig {
	if mdl == nil {
		return nil
	}
	return &entity.ServiceConfig{
		Id:        mdl.Id,
		ServiceId: mdl.ServiceId,
		Key:       mdl.Key,
		Value:     mdl.Value,
		IsSecret:  mdl.IsSecret,
		CreatedAt: mdl.CreatedAt,
		UpdatedAt: mdl.UpdatedAt,
	}
}

func (m *ServiceConfigMapper) ToModel(ent *entity.ServiceConfig) *model.ServiceConfig {
	if ent == nil {
		return nil
	}
	return &model.ServiceConfig{
		Id:        ent.Id,
		ServiceId: ent.ServiceId,
		Key:       ent.Key,
		Value:     ent.Value,
		IsSecret:  ent.IsSecret,
		CreatedAt: ent.CreatedAt,
		UpdatedAt: ent.UpdatedAt,
	}
}

func (m *ServiceConfigMapper) ToEntities(models []*model.ServiceConfig) []*entity.ServiceConfig {
	entities := make([]*entity.ServiceConfig, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

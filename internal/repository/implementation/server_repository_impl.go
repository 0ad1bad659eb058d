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

type ServerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ServerMapper
}

func NewServerRepository(db *gorm.DB) contract.ServerRepository {
	return &ServerRepositoryImpl{
		db:     db,
		mapper: mapper.NewServerMapper(),
	}
}

func (r *ServerRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ServerRepositoryImpl) Create(ctx context.Context, server *entity.Server) error {
	m := r.mapper.ToModel(server)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*server = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServerRepositoryImpl) Update(ctx context.Context, server *entity.Server) error {
	m := r.mapper.ToModel(server)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*server = *r.mapper.ToEntity(m)
	return nil
}

func (r *ServerRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Server{}, id).Error
}

func (r *ServerRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Server, error) {
	var m model.Server
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ServerRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Server, error) {
	var models []*model.Server
	query := r.applySpecifications(r.db.WithContext(ctx).Scopes(scope.OrderByCreatedAsc), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

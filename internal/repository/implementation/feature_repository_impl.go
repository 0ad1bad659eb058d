// FILE: internal/repository/implementation/feature_repository_impl.go
// Implementation of FeatureRepository
package implementation

import (
	"context"
	"errors"
	"fmt"

	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/mapper"
	"hestia-console-be/internal/pkg/apperr"
	"hestia-console-be/internal/model"
	"hestia-console-be/internal/repository/contract"
	"hestia-console-be/internal/repository/scope"
	"hestia-console-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeatureRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FeatureMapper
}

func NewFeatureRepository(db *gorm.DB) contract.FeatureRepository {
	return &FeatureRepositoryImpl{
		db:     db,
		mapper: mapper.NewFeatureMapper(),
	}
}

func (r *FeatureRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeatureRepositoryImpl) Create(ctx context.Context, feature *entity.Feature) error {
	m := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		// The partial unique index fires when a concurrent create slips
		// past the service-level uniqueness check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("feature with code '%s' already exists: %w", feature.Code, apperr.ErrConflict)
		}
		return err
	}
	*feature = *r.mapper.ToEntity(m)
	return nil
}

func (r *FeatureRepositoryImpl) Update(ctx context.Context, feature *entity.Feature) error {
	m := r.mapper.ToModel(feature)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*feature = *r.mapper.ToEntity(m)
	return nil
}

// Delete sets the deletion marker on the feature row only. Subfeature rows
// stay untouched; they become unreachable because FindAllWithSubfeatures
// and FindByCode start from live feature rows.
func (r *FeatureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Feature{}, id).Error
}

func (r *FeatureRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	var m model.Feature
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeatureRepositoryImpl) FindAllWithSubfeatures(ctx context.Context) ([]*entity.Feature, error) {
	var models []*model.Feature
	query := r.db.WithContext(ctx).
		Preload("Subfeatures").
		Scopes(scope.OrderByCreatedAsc)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FeatureRepositoryImpl) FindByCode(ctx context.Context, code string) (*entity.Feature, error) {
	var m model.Feature
	query := r.db.WithContext(ctx).
		Preload("Subfeatures").
		Where("code = ?", code)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *FeatureRepositoryImpl) CreateSubfeature(ctx context.Context, subfeature *entity.Subfeature) error {
	m := r.mapper.SubfeatureToModel(subfeature)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("subfeature with code '%s' already exists: %w", subfeature.Code, apperr.ErrConflict)
		}
		return err
	}
	*subfeature = *r.mapper.SubfeatureToEntity(m)
	return nil
}

func (r *FeatureRepositoryImpl) UpdateSubfeature(ctx context.Context, subfeature *entity.Subfeature) error {
	m := r.mapper.SubfeatureToModel(subfeature)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*subfeature = *r.mapper.SubfeatureToEntity(m)
	return nil
}

func (r *FeatureRepositoryImpl) DeleteSubfeature(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Subfeature{}, id).Error
}

func (r *FeatureRepositoryImpl) FindSubfeatureByCode(ctx context.Context, code string) (*entity.Subfeature, error) {
	var m model.Subfeature
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubfeatureToEntity(&m), nil
}

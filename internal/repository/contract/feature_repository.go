// FILE: internal/repository/contract/feature_repository.go
// Repository interface for the feature registry
package contract

import (
	"context"

	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/repository/specification"

	"github.com/google/uuid"
)

// FeatureRepository is the durable source of truth for the registry.
// Lookups never see soft-deleted rows; Delete* set the deletion marker.
// "Not found" is reported as (nil, nil), matching the other repositories.
type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	Update(ctx context.Context, feature *entity.Feature) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error)
	// FindAllWithSubfeatures returns every live feature with its live
	// subfeatures attached, in creation order.
	FindAllWithSubfeatures(ctx context.Context) ([]*entity.Feature, error)
	FindByCode(ctx context.Context, code string) (*entity.Feature, error)

	CreateSubfeature(ctx context.Context, subfeature *entity.Subfeature) error
	UpdateSubfeature(ctx context.Context, subfeature *entity.Subfeature) error
	DeleteSubfeature(ctx context.Context, id uuid.UUID) error
	FindSubfeatureByCode(ctx context.Context, code string) (*entity.Subfeature, error)
}

// FILE: internal/mapper/feature_mapper.go
// Mapper for Feature/Subfeature entity <-> model conversion
package mapper

import (
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/model"

	"gorm.io/datatypes"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(mdl *model.Feature) *entity.Feature {
	if mdl == nil {
		return nil
	}
	subfeatures := make([]*entity.Subfeature, 0, len(mdl.Subfeatures))
	for i := range mdl.Subfeatures {
		subfeatures = append(subfeatures, m.SubfeatureToEntity(&mdl.Subfeatures[i]))
	}
	return &entity.Feature{
		Id:           mdl.Id,
		Code:         mdl.Code,
		Name:         mdl.Name,
		Description:  mdl.Description,
		Path:         mdl.Path,
		Enabled:      mdl.Enabled,
		AllowedRoles: []string(mdl.AllowedRoles),
		Subfeatures:  subfeatures,
		CreatedAt:    mdl.CreatedAt,
		UpdatedAt:    mdl.UpdatedAt,
	}
}

func (m *FeatureMapper) ToModel(ent *entity.Feature) *model.Feature {
	if ent == nil {
		return nil
	}
	return &model.Feature{
		Id:           ent.Id,
		Code:         ent.Code,
		Name:         ent.Name,
		Description:  ent.Description,
		Path:         ent.Path,
		Enabled:      ent.Enabled,
		AllowedRoles: datatypes.NewJSONSlice(ent.AllowedRoles),
		CreatedAt:    ent.CreatedAt,
		UpdatedAt:    ent.UpdatedAt,
	}
}

func (m *FeatureMapper) ToEntities(models []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

func (m *FeatureMapper) SubfeatureToEntity(mdl *model.Subfeature) *entity.Subfeature {
	if mdl == nil {
		return nil
	}
	return &entity.Subfeature{
		Id:           mdl.Id,
		FeatureId:    mdl.FeatureId,
		Code:         mdl.Code,
		Name:         mdl.Name,
		Path:         mdl.Path,
		Enabled:      mdl.Enabled,
		AllowedRoles: []string(mdl.AllowedRoles),
		CreatedAt:    mdl.CreatedAt,
		UpdatedAt:    mdl.UpdatedAt,
	}
}

func (m *FeatureMapper) SubfeatureToModel(ent *entity.Subfeature) *model.Subfeature {
	if ent == nil {
		return nil
	}
	return &model.Subfeature{
		Id:           ent.Id,
		FeatureId:    ent.FeatureId,
		Code:         ent.Code,
		Name:         ent.Name,
		Path:         ent.Path,
		Enabled:      ent.Enabled,
		AllowedRoles: datatypes.NewJSONSlice(ent.AllowedRoles),
		CreatedAt:    ent.CreatedAt,
		UpdatedAt:    ent.UpdatedAt,
	}
}

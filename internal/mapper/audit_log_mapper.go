package mapper

import (
	"encoding/json"

	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/model"

	"gorm.io/datatypes"
)

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper {
	return &AuditLogMapper{}
}

func (m *AuditLogMapper) ToEntity(mdl *model.AuditLog) *entity.AuditLog {
	if mdl == nil {
		return nil
	}
	var details map[string]interface{}
	if len(mdl.Details) > 0 {
		// Malformed details are tolerated; the row is still returned.
		_ = json.Unmarshal(mdl.Details, &details)
	}
	return &entity.AuditLog{
		Id:        mdl.Id,
		UserId:    mdl.UserId,
		Action:    mdl.Action,
		Details:   details,
		IpAddress: mdl.IpAddress,
		CreatedAt: mdl.CreatedAt,
	}
}

func (m *AuditLogMapper) ToModel(ent *entity.AuditLog) *model.AuditLog {
	if ent == nil {
		return nil
	}
	var details datatypes.JSON
	if ent.Details != nil {
		if raw, err := json.Marshal(ent.Details); err == nil {
			details = raw
		}
	}
	return &model.AuditLog{
		Id:        ent.Id,
		UserId:    ent.UserId,
		Action:    ent.Action,
		Details:   details,
		IpAddress: ent.IpAddress,
		CreatedAt: ent.CreatedAt,
	}
}

func (m *AuditLogMapper) ToEntities(models []*model.AuditLog) []*entity.AuditLog {
	entities := make([]*entity.AuditLog, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

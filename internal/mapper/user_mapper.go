package mapper

import (
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(mdl *model.User) *entity.User {
	if mdl == nil {
		return nil
	}
	return &entity.User{
		Id:           mdl.Id,
		Name:         mdl.Name,
		Nickname:     mdl.Nickname,
		Email:        mdl.Email,
		PasswordHash: mdl.PasswordHash,
		Role:         entity.UserRole(mdl.Role),
		LastLogin:    mdl.LastLogin,
		CreatedAt:    mdl.CreatedAt,
		UpdatedAt:    mdl.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(ent *entity.User) *model.User {
	if ent == nil {
		return nil
	}
	return &model.User{
		Id:           ent.Id,
		Name:         ent.Name,
		Nickname:     ent.Nickname,
		Email:        ent.Email,
		PasswordHash: ent.PasswordHash,
		Role:         string(ent.Role),
		LastLogin:    ent.LastLogin,
		CreatedAt:    ent.CreatedAt,
		UpdatedAt:    ent.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(models []*model.User) []*entity.User {
	entities := make([]*entity.User, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

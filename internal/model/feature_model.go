// FILE: internal/model/feature_model.go
// GORM models for the features / subfeatures registry tables
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Feature is the canonical registry row. Soft delete goes through
// gorm.DeletedAt so every query excludes deleted rows by default; no
// per-call-site deleted_at filter is needed (or allowed). The unique
// index on code is partial over live rows, so a soft-deleted code can
// be reused by a later create.
type Feature struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code         string                      `gorm:"type:text;not null;uniqueIndex:uniq_features_code_live,where:deleted_at IS NULL"`
	Name         string                      `gorm:"type:text;not null"`
	Description  string                      `gorm:"type:text"`
	Path         string                      `gorm:"type:text;not null"`
	Enabled      bool                        `gorm:"not null;default:true"`
	AllowedRoles datatypes.JSONSlice[string] `gorm:"not null"`
	Subfeatures  []Subfeature                `gorm:"foreignKey:FeatureId;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt              `gorm:"index"`
}

func (Feature) TableName() string {
	return "features"
}

type Subfeature struct {
	Id           uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FeatureId    uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Code         string                      `gorm:"type:text;not null;uniqueIndex:uniq_subfeatures_code_live,where:deleted_at IS NULL"`
	Name         string                      `gorm:"type:text;not null"`
	Path         string                      `gorm:"type:text;not null"`
	Enabled      bool                        `gorm:"not null;default:true"`
	AllowedRoles datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt              `gorm:"index"`
}

func (Subfeature) TableName() string {
	return "subfeatures"
}

// FILE: internal/dto/feature_dto.go
// DTOs for the feature registry administration API
package dto

import "github.com/google/uuid"

// CreateFeatureRequest adds a new feature to the registry
type CreateFeatureRequest struct {
	Code         string   `json:"code" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Path         string   `json:"path" validate:"required"`
	Enabled      bool     `json:"enabled"`
	AllowedRoles []string `json:"allowedRoles" validate:"required"`
}

// UpdateFeatureRequest patches a feature; code itself is immutable
type UpdateFeatureRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Path         *string  `json:"path,omitempty"`
	Enabled      *bool    `json:"enabled,omitempty"`
	AllowedRoles []string `json:"allowedRoles,omitempty"`
}

// CreateSubfeatureRequest adds a subfeature under an existing feature,
// addressed by the parent's code
type CreateSubfeatureRequest struct {
	FeatureCode  string   `json:"featureCode" validate:"required"`
	Code         string   `json:"code" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Path         string   `json:"path" validate:"required"`
	Enabled      bool     `json:"enabled"`
	AllowedRoles []string `json:"allowedRoles" validate:"required"`
}

// UpdateSubfeatureRequest patches a subfeature; code immutable
type UpdateSubfeatureRequest struct {
	Name         *string  `json:"name,omitempty"`
	Path         *string  `json:"path,omitempty"`
	Enabled      *bool    `json:"enabled,omitempty"`
	AllowedRoles []string `json:"allowedRoles,omitempty"`
}

// FeatureResponse mirrors the client-side registry shape: features carry
// their live subfeatures nested
type FeatureResponse struct {
	Id           uuid.UUID            `json:"id"`
	Code         string               `json:"code"`
	Name         string               `json:"name"`
	Description  string               `json:"description,omitempty"`
	Path         string               `json:"path"`
	Enabled      bool                 `json:"enabled"`
	AllowedRoles []string             `json:"allowedRoles"`
	Subfeatures  []SubfeatureResponse `json:"subfeatures"`
}

type SubfeatureResponse struct {
	Id           uuid.UUID `json:"id"`
	FeatureId    uuid.UUID `json:"featureId"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Enabled      bool      `json:"enabled"`
	AllowedRoles []string  `json:"allowedRoles"`
}

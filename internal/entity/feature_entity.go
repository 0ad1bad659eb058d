// FILE: internal/entity/feature_entity.go
// Domain entities for the feature registry
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feature is a top-level, independently toggleable unit of the console
// with an associated route and role allow-list.
type Feature struct {
	Id           uuid.UUID
	Code         string // Unique slug: monitoring-servers, dashboard, etc.
	Name         string // Display name: "Servidores"
	Description  string
	Path         string // Client route the feature maps to
	Enabled      bool
	AllowedRoles []string // Subset of the closed role enum
	Subfeatures  []*Subfeature
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Subfeature is a Feature-owned child with the same shape minus description.
type Subfeature struct {
	Id           uuid.UUID
	FeatureId    uuid.UUID
	Code         string
	Name         string
	Path         string
	Enabled      bool
	AllowedRoles []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedByServer filters services by their owning server
type OwnedByServer struct {
	ServerID uuid.UUID
}

func (s OwnedByServer) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("server_id = ?", s.ServerID)
}

// OwnedByService filters configs by their owning service
type OwnedByService struct {
	ServiceID uuid.UUID
}

func (s OwnedByService) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("service_id = ?", s.ServiceID)
}

// ByEnvironment filters servers by environment (dev, staging, prod)
type ByEnvironment struct {
	Environment string
}

func (s ByEnvironment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("environment = ?", s.Environment)
}

// ByAction filters audit logs by action token
type ByAction struct {
	Action string
}

func (s ByAction) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("action = ?", s.Action)
}

// ByActor filters audit logs by acting user
type ByActor struct {
	UserID uuid.UUID
}

func (s ByActor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// FILE: internal/service/feature_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/pkg/apperr"
	"hestia-console-be/internal/repository/specification"
	"hestia-console-be/internal/repository/unitofwork"
	"hestia-console-be/pkg/access"

	"github.com/google/uuid"
)

// IFeatureService is the administration surface over the feature
// registry. Snapshot doubles as the serverutils.RegistryProvider the
// route gate consumes.
type IFeatureService interface {
	GetAll(ctx context.Context) ([]dto.FeatureResponse, error)
	GetByCode(ctx context.Context, code string) (*dto.FeatureResponse, error)
	Create(ctx context.Context, actor Actor, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	Update(ctx context.Context, actor Actor, code string, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	Delete(ctx context.Context, actor Actor, code string) error
	CreateSubfeature(ctx context.Context, actor Actor, req *dto.CreateSubfeatureRequest) (*dto.SubfeatureResponse, error)
	UpdateSubfeature(ctx context.Context, actor Actor, code string, req *dto.UpdateSubfeatureRequest) (*dto.SubfeatureResponse, error)
	DeleteSubfeature(ctx context.Context, actor Actor, code string) error

	Snapshot(ctx context.Context) (*access.Snapshot, error)

	// SetChangeListener registers a callback fired after every successful
	// registry mutation. The cached registry uses it to invalidate.
	SetChangeListener(fn func())
}

type featureService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      IAuditService
	onChange   func()
}

func NewFeatureService(uowFactory unitofwork.RepositoryFactory, audit IAuditService) IFeatureService {
	return &featureService{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

func (s *featureService) SetChangeListener(fn func()) {
	s.onChange = fn
}

func (s *featureService) notifyChange() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *featureService) GetAll(ctx context.Context) ([]dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := uow.FeatureRepository().FindAllWithSubfeatures(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		res = append(res, toFeatureResponse(f))
	}
	return res, nil
}

func (s *featureService) GetByCode(ctx context.Context, code string) (*dto.FeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, fmt.Errorf("feature '%s': %w", code, apperr.ErrNotFound)
	}
	res := toFeatureResponse(feature)
	return &res, nil
}

func (s *featureService) Create(ctx context.Context, actor Actor, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	if req.Code == "" || req.Name == "" || req.Path == "" {
		return nil, fmt.Errorf("code, name and path are required: %w", apperr.ErrValidation)
	}
	if !entity.ValidRoles(req.AllowedRoles) {
		return nil, fmt.Errorf("allowedRoles must be a non-empty subset of ROOT/ADMIN/USER: %w", apperr.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	// Uniqueness is checked among live rows only; a soft-deleted code is
	// free for reuse. The partial unique index backs this up at the
	// storage layer.
	existing, err := uow.FeatureRepository().FindByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("feature with code '%s' already exists: %w", req.Code, apperr.ErrConflict)
	}

	feature := &entity.Feature{
		Id:           uuid.New(),
		Code:         req.Code,
		Name:         req.Name,
		Description:  req.Description,
		Path:         req.Path,
		Enabled:      req.Enabled,
		AllowedRoles: req.AllowedRoles,
	}
	if err := uow.FeatureRepository().Create(ctx, feature); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "CREATE_FEATURE", map[string]interface{}{
		"code": feature.Code, "enabled": feature.Enabled, "allowedRoles": feature.AllowedRoles,
	})
	s.notifyChange()

	res := toFeatureResponse(feature)
	return &res, nil
}

func (s *featureService) Update(ctx context.Context, actor Actor, code string, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	if req.AllowedRoles != nil && !entity.ValidRoles(req.AllowedRoles) {
		return nil, fmt.Errorf("allowedRoles must be a non-empty subset of ROOT/ADMIN/USER: %w", apperr.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, fmt.Errorf("feature '%s': %w", code, apperr.ErrNotFound)
	}

	if req.Name != nil {
		feature.Name = *req.Name
	}
	if req.Description != nil {
		feature.Description = *req.Description
	}
	if req.Path != nil {
		feature.Path = *req.Path
	}
	if req.Enabled != nil {
		feature.Enabled = *req.Enabled
	}
	if req.AllowedRoles != nil {
		feature.AllowedRoles = req.AllowedRoles
	}
	feature.UpdatedAt = time.Now()

	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "UPDATE_FEATURE", map[string]interface{}{
		"code": code, "enabled": feature.Enabled,
	})
	s.notifyChange()

	res := toFeatureResponse(feature)
	return &res, nil
}

func (s *featureService) Delete(ctx context.Context, actor Actor, code string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	feature, err := uow.FeatureRepository().FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if feature == nil {
		return fmt.Errorf("feature '%s': %w", code, apperr.ErrNotFound)
	}

	if err := uow.FeatureRepository().Delete(ctx, feature.Id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "DELETE_FEATURE", map[string]interface{}{"code": code})
	s.notifyChange()
	return nil
}

func (s *featureService) CreateSubfeature(ctx context.Context, actor Actor, req *dto.CreateSubfeatureRequest) (*dto.SubfeatureResponse, error) {
	if req.FeatureCode == "" || req.Code == "" || req.Name == "" || req.Path == "" {
		return nil, fmt.Errorf("featureCode, code, name and path are required: %w", apperr.ErrValidation)
	}
	if !entity.ValidRoles(req.AllowedRoles) {
		return nil, fmt.Errorf("allowedRoles must be a non-empty subset of ROOT/ADMIN/USER: %w", apperr.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	parent, err := uow.FeatureRepository().FindByCode(ctx, req.FeatureCode)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("parent feature '%s': %w", req.FeatureCode, apperr.ErrNotFound)
	}

	existing, err := uow.FeatureRepository().FindSubfeatureByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("subfeature with code '%s' already exists: %w", req.Code, apperr.ErrConflict)
	}

	subfeature := &entity.Subfeature{
		Id:           uuid.New(),
		FeatureId:    parent.Id,
		Code:         req.Code,
		Name:         req.Name,
		Path:         req.Path,
		Enabled:      req.Enabled,
		AllowedRoles: req.AllowedRoles,
	}
	if err := uow.FeatureRepository().CreateSubfeature(ctx, subfeature); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "CREATE_SUBFEATURE", map[string]interface{}{
		"code": subfeature.Code, "featureCode": req.FeatureCode,
	})
	s.notifyChange()

	res := toSubfeatureResponse(subfeature)
	return &res, nil
}

func (s *featureService) UpdateSubfeature(ctx context.Context, actor Actor, code string, req *dto.UpdateSubfeatureRequest) (*dto.SubfeatureResponse, error) {
	if req.AllowedRoles != nil && !entity.ValidRoles(req.AllowedRoles) {
		return nil, fmt.Errorf("allowedRoles must be a non-empty subset of ROOT/ADMIN/USER: %w", apperr.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subfeature, err := s.findLiveSubfeature(ctx, uow, code)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		subfeature.Name = *req.Name
	}
	if req.Path != nil {
		subfeature.Path = *req.Path
	}
	if req.Enabled != nil {
		subfeature.Enabled = *req.Enabled
	}
	if req.AllowedRoles != nil {
		subfeature.AllowedRoles = req.AllowedRoles
	}
	subfeature.UpdatedAt = time.Now()

	if err := uow.FeatureRepository().UpdateSubfeature(ctx, subfeature); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "UPDATE_SUBFEATURE", map[string]interface{}{
		"code": code, "enabled": subfeature.Enabled,
	})
	s.notifyChange()

	res := toSubfeatureResponse(subfeature)
	return &res, nil
}

func (s *featureService) DeleteSubfeature(ctx context.Context, actor Actor, code string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subfeature, err := s.findLiveSubfeature(ctx, uow, code)
	if err != nil {
		return err
	}

	if err := uow.FeatureRepository().DeleteSubfeature(ctx, subfeature.Id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "DELETE_SUBFEATURE", map[string]interface{}{"code": code})
	s.notifyChange()
	return nil
}

// findLiveSubfeature resolves a subfeature for mutation. A subfeature
// whose parent feature has been soft-deleted is orphaned and treated the
// same as not found; mutations always validate against a live parent.
func (s *featureService) findLiveSubfeature(ctx context.Context, uow unitofwork.UnitOfWork, code string) (*entity.Subfeature, error) {
	subfeature, err := uow.FeatureRepository().FindSubfeatureByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if subfeature == nil {
		return nil, fmt.Errorf("subfeature '%s': %w", code, apperr.ErrNotFound)
	}

	parent, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: subfeature.FeatureId})
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, fmt.Errorf("subfeature '%s': %w", code, apperr.ErrNotFound)
	}
	return subfeature, nil
}

// Snapshot materializes the current registry for the access predicate. It
// is re-read per call; the route gate stays consistent with the registry
// without any push-based invalidation.
func (s *featureService) Snapshot(ctx context.Context) (*access.Snapshot, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	features, err := uow.FeatureRepository().FindAllWithSubfeatures(ctx)
	if err != nil {
		return nil, err
	}
	return access.NewSnapshot(toAccessEntries(features)), nil
}

// --- converters ---

func toFeatureResponse(f *entity.Feature) dto.FeatureResponse {
	subfeatures := make([]dto.SubfeatureResponse, 0, len(f.Subfeatures))
	for _, sf := range f.Subfeatures {
		subfeatures = append(subfeatures, toSubfeatureResponse(sf))
	}
	return dto.FeatureResponse{
		Id:           f.Id,
		Code:         f.Code,
		Name:         f.Name,
		Description:  f.Description,
		Path:         f.Path,
		Enabled:      f.Enabled,
		AllowedRoles: f.AllowedRoles,
		Subfeatures:  subfeatures,
	}
}

func toSubfeatureResponse(sf *entity.Subfeature) dto.SubfeatureResponse {
	return dto.SubfeatureResponse{
		Id:           sf.Id,
		FeatureId:    sf.FeatureId,
		Code:         sf.Code,
		Name:         sf.Name,
		Path:         sf.Path,
		Enabled:      sf.Enabled,
		AllowedRoles: sf.AllowedRoles,
	}
}

func toAccessEntries(features []*entity.Feature) []access.Entry {
	entries := make([]access.Entry, 0, len(features))
	for _, f := range features {
		entry := access.Entry{
			Code:         f.Code,
			Name:         f.Name,
			Description:  f.Description,
			Path:         f.Path,
			Enabled:      f.Enabled,
			AllowedRoles: f.AllowedRoles,
		}
		for _, sf := range f.Subfeatures {
			entry.Subfeatures = append(entry.Subfeatures, access.Entry{
				Code:         sf.Code,
				Name:         sf.Name,
				Path:         sf.Path,
				Enabled:      sf.Enabled,
				AllowedRoles: sf.AllowedRoles,
			})
		}
		entries = append(entries, entry)
	}
	return entries
}

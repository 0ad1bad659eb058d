// FILE: internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/pkg/apperr"
	"hestia-console-be/internal/repository/specification"
	"hestia-console-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	GetById(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Create(ctx context.Context, actor Actor, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      IAuditService
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, audit IAuditService) IUserService {
	return &userService{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u))
	}
	return res, nil
}

func (s *userService) GetById(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id, apperr.ErrNotFound)
	}
	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) Create(ctx context.Context, actor Actor, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", apperr.ErrValidation)
	}
	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return nil, fmt.Errorf("role must be one of ROOT/ADMIN/USER: %w", apperr.ErrValidation)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %w", apperr.ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Id:           uuid.New(),
		Name:         req.Name,
		Nickname:     req.Nickname,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "CREATE_USER", map[string]interface{}{
		"email": user.Email, "role": string(user.Role),
	})

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id, apperr.ErrNotFound)
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Nickname != nil {
		user.Nickname = req.Nickname
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if req.Role != nil {
		role, ok := entity.ParseRole(*req.Role)
		if !ok {
			return nil, fmt.Errorf("role must be one of ROOT/ADMIN/USER: %w", apperr.ErrValidation)
		}
		user.Role = role
	}

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "UPDATE_USER", map[string]interface{}{
		"id": id.String(), "role": string(user.Role),
	})

	res := toUserResponse(user)
	return &res, nil
}

func (s *userService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", id, apperr.ErrNotFound)
	}

	if err := uow.UserRepository().Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "DELETE_USER", map[string]interface{}{"id": id.String()})
	return nil
}

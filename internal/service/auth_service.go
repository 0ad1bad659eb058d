// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"hestia-console-be/internal/dto"
	"hestia-console-be/internal/entity"
	"hestia-console-be/internal/pkg/apperr"
	"hestia-console-be/internal/repository/specification"
	"hestia-console-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, ipAddress string) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.LoginResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	features   IFeatureService
	audit      IAuditService
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, features IFeatureService, audit IAuditService) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		features:   features,
		audit:      audit,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest, ipAddress string) (*dto.RegisterResponse, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", apperr.ErrValidation)
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

	// The very first account gets ROOT so a fresh install can be
	// administered; everyone after that starts as USER.
	count, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	role := entity.UserRoleUser
	if count == 0 {
		role = entity.UserRoleRoot
	}

	user := &entity.User{
		Id:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, Actor{UserId: &user.Id, IpAddress: ipAddress}, "REGISTER", map[string]interface{}{
		"email": user.Email, "role": string(user.Role),
	})

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthenticated)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperr.ErrUnauthenticated)
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, Actor{UserId: &user.Id, IpAddress: ipAddress}, "LOGIN", map[string]interface{}{
		"email": user.Email, "role": string(user.Role),
	})

	// Denormalized registry snapshot for the client bootstrap. A registry
	// failure here degrades to an empty list; the client falls back to a
	// fresh fetch (or deny-all) on its side.
	features, err := s.features.GetAll(ctx)
	if err != nil {
		features = []dto.FeatureResponse{}
	}

	return &dto.LoginResponse{
		Token:    token,
		User:     toUserResponse(user),
		Features: features,
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userId, apperr.ErrNotFound)
	}

	features, err := s.features.GetAll(ctx)
	if err != nil {
		features = []dto.FeatureResponse{}
	}

	return &dto.LoginResponse{
		User:     toUserResponse(user),
		Features: features,
	}, nil
}

func (s *authService) signToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:        u.Id,
		Name:      u.Name,
		Nickname:  u.Nickname,
		Email:     u.Email,
		Role:      string(u.Role),
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/marketlens-backend/internal/logger"
	"github.com/yungbote/marketlens-backend/internal/repos"
	"github.com/yungbote/marketlens-backend/internal/types"
)

type UserService interface {
	CreateUser(ctx context.Context, tx *gorm.DB, email, name string) (*types.User, error)
	GetUserByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := baseLog.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, tx *gorm.DB, email, name string) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", ErrValidation)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	exists, err := s.userRepo.EmailExists(ctx, transaction, email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", ErrUserAlreadyExists, email)
	}

	now := time.Now().UTC()
	user := &types.User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.userRepo.Create(ctx, transaction, []*types.User{user}); err != nil {
		s.log.Error("CreateUser failed", "error", err, "email", email)
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = s.db
	}

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	users, err := s.userRepo.GetByIDs(ctx, transaction, []uuid.UUID{userID})
	if err != nil {
		s.log.Error("GetUserByID failed", "error", err, "user_id", userID)
		return nil, fmt.Errorf("get user: %w", err)
	}
	if len(users) == 0 || users[0] == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return users[0], nil
}

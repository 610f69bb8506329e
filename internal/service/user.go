package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"staff-weekly/internal/model"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

func (s *UserService) ByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// UpdateProfile applies the self-service editable fields only.
func (s *UserService) UpdateProfile(ctx context.Context, id uint, req *model.UpdateProfileRequest) (*model.User, error) {
	u, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Position != nil {
		if !model.ValidPosition(*req.Position) {
			return nil, ErrInvalidPosition
		}
		u.Position = *req.Position
	}
	if err := s.db.WithContext(ctx).Save(u).Error; err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// ListStaff returns all staff accounts sorted by name.
func (s *UserService) ListStaff(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.db.WithContext(ctx).
		Where("role = ?", model.RoleStaff).
		Order("name ASC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"coursify/internal/errors"
	"coursify/internal/model"
	"coursify/internal/repository"
	"coursify/internal/serializer"
	"coursify/internal/validation"
)

// UserService exposes user domain operations. Reads and creates return
// serialized documents so the handler layer only translates them to HTTP.
type UserService interface {
	CreateUser(ctx context.Context, username, email, password string, role model.Role) (map[string]interface{}, error)
	GetUserDocument(ctx context.Context, id uint) (map[string]interface{}, error)
	ListUsers(ctx context.Context) ([]map[string]interface{}, error)
	DeleteUser(ctx context.Context, id uint) error
}

type userService struct {
	users   repository.UserRepository
	cascade repository.CascadeRepository
	cache   DocumentCache
}

// NewUserService builds a UserService.
func NewUserService(users repository.UserRepository, cascade repository.CascadeRepository, cache DocumentCache) UserService {
	return &userService{users: users, cascade: cascade, cache: cache}
}

// CreateUser validates the fields, hashes the password and persists the user.
// The plaintext password is discarded as soon as the hash is stored.
func (s *userService) CreateUser(ctx context.Context, username, email, password string, role model.Role) (map[string]interface{}, error) {
	if role == "" {
		role = model.RoleStudent
	}

	user := &model.User{}
	err := validation.Apply(
		validation.Field{
			Check:  func() error { return validation.Username(username) },
			Assign: func() { user.Username = username },
		},
		validation.Field{
			Check:  func() error { return validation.Email(email) },
			Assign: func() { user.Email = email },
		},
		validation.Field{
			Check:  func() error { return validation.UserRole(role) },
			Assign: func() { user.Role = role },
		},
	)
	if err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return serializer.User(user, serializer.UserSummaryRules...), nil
}

// GetUserDocument returns a fully nested serialization of one user,
// served from cache when possible.
func (s *userService) GetUserDocument(ctx context.Context, id uint) (map[string]interface{}, error) {
	if data, _ := s.cache.Get(ctx, userDocKey(id)); data != nil {
		var cached map[string]interface{}
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	user, err := s.users.FindByIDWithRelations(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	doc := serializer.User(user)
	if payload, err := json.Marshal(doc); err == nil {
		_ = s.cache.Set(ctx, userDocKey(id), payload, docCacheTTL)
	}
	return doc, nil
}

// ListUsers returns summary documents for all users, relations stripped.
func (s *userService) ListUsers(ctx context.Context) ([]map[string]interface{}, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	return serializer.Users(users, serializer.UserSummaryRules...), nil
}

// DeleteUser removes a user and everything they own in one transaction:
// enrollments, reviews, and instructed courses with their own dependents.
// Every cached document that embedded any deleted row is invalidated: the
// courses the user owned, was enrolled in or reviewed, and the users caught
// in the owned-course cascades.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	affectedCourseIDs, affectedUserIDs, err := s.cascade.DeleteUser(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrUserNotFound
		}
		return err
	}

	keys := []string{userDocKey(id)}
	for _, courseID := range affectedCourseIDs {
		keys = append(keys, courseDocKey(courseID))
	}
	for _, userID := range affectedUserIDs {
		keys = append(keys, userDocKey(userID))
	}
	_ = s.cache.DeleteMany(ctx, keys...)
	return nil
}

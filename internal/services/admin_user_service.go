package services

import (
	"errors"
	"fmt"

	"watchstore/internal/models"
	"watchstore/internal/repositories"
)

// AdminUserService manages back-office operator accounts.
type AdminUserService struct {
	repo repositories.AdminUserRepository
}

// NewAdminUserService creates a new AdminUserService.
func NewAdminUserService(repo repositories.AdminUserRepository) *AdminUserService {
	return &AdminUserService{
		repo: repo,
	}
}

// GetAllUsers lists admin users. Password hashes never serialize
// (the model's json tag strips them).
func (s *AdminUserService) GetAllUsers() ([]models.AdminUser, error) {
	return s.repo.GetAll()
}

// CreateUser registers a new admin user with a bcrypt-hashed password.
func (s *AdminUserService) CreateUser(req models.CreateAdminUserRequest) (*models.AdminUser, error) {
	if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.AdminUser{
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	return user, nil
}

// UpdateUser changes an admin user's email and/or password. Empty
// request fields keep the current values.
func (s *AdminUserService) UpdateUser(id string, req models.UpdateAdminUserRequest) (*models.AdminUser, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != user.Email {
		if existing, err := s.repo.GetByEmail(req.Email); err == nil && existing != nil {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
		}
		user.Email = req.Email
	}
	if req.Password != "" {
		hashed, err := HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update admin user %s: %w", id, err)
	}
	return user, nil
}

// DeleteUser removes an admin user by ID.
func (s *AdminUserService) DeleteUser(id string) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete admin user %s: %w", id, err)
	}
	return nil
}

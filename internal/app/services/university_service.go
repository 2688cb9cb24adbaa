package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/deniz/credbridge/internal/app/models"
	"github.com/deniz/credbridge/internal/app/repositories"
	"github.com/deniz/credbridge/internal/pkg/apperrors"
)

// UniversityService defines the interface for university-related operations
type UniversityService interface {
	CreateUniversity(ctx context.Context, university *models.University) (int64, error)
	GetUniversityByID(ctx context.Context, id int64) (*models.University, error)
	GetAllUniversities(ctx context.Context) ([]*models.University, error)
	DeleteUniversity(ctx context.Context, id int64) error
}

// universityServiceImpl implements the UniversityService interface
type universityServiceImpl struct {
	universityRepo *repositories.UniversityRepository
}

// NewUniversityService creates a new university service instance
func NewUniversityService(universityRepo *repositories.UniversityRepository) UniversityService {
	return &universityServiceImpl{
		universityRepo: universityRepo,
	}
}

// validateUniversity validates university data before database operations
func validateUniversity(university *models.University) error {
	if university == nil {
		return fmt.Errorf("%w: university is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(university.Name) == "" {
		return fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateUniversity creates a new university
func (s *universityServiceImpl) CreateUniversity(ctx context.Context, university *models.University) (int64, error) {
	if err := validateUniversity(university); err != nil {
		return 0, err
	}

	id, err := s.universityRepo.Create(ctx, university)
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityAlreadyExists) {
			return 0, apperrors.ErrUniversityAlreadyExists
		}
		return 0, fmt.Errorf("error creating university: %w", err)
	}
	return id, nil
}

// GetUniversityByID retrieves a university by ID
func (s *universityServiceImpl) GetUniversityByID(ctx context.Context, id int64) (*models.University, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	university, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}
	return university, nil
}

// GetAllUniversities retrieves all universities
func (s *universityServiceImpl) GetAllUniversities(ctx context.Context) ([]*models.University, error) {
	universities, err := s.universityRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving universities: %w", err)
	}
	return universities, nil
}

// DeleteUniversity deletes a university by ID
func (s *universityServiceImpl) DeleteUniversity(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid university ID", apperrors.ErrValidationFailed)
	}

	err := s.universityRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return apperrors.ErrUniversityNotFound
		}
		if errors.Is(err, apperrors.ErrUniversityHasCourses) {
			return apperrors.ErrUniversityHasCourses
		}
		return fmt.Errorf("error deleting university: %w", err)
	}
	return nil
}

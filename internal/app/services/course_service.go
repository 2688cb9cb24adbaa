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

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo     *repositories.CourseRepository
	universityRepo *repositories.UniversityRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo *repositories.CourseRepository, universityRepo *repositories.UniversityRepository) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		universityRepo: universityRepo,
	}
}

// validateCourse validates course data before database operations
func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}

	if strings.TrimSpace(course.CourseName) == "" {
		return fmt.Errorf("%w: course name cannot be empty", apperrors.ErrValidationFailed)
	}

	if course.UniversityID <= 0 {
		return fmt.Errorf("%w: university ID is required", apperrors.ErrValidationFailed)
	}

	if course.CreditHours <= 0 {
		return fmt.Errorf("%w: credit hours must be positive", apperrors.ErrValidationFailed)
	}

	return nil
}

// CreateCourse creates a new course under an existing university
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	if err := validateCourse(course); err != nil {
		return 0, err
	}

	// Owning university must exist
	if _, err := s.universityRepo.GetByID(ctx, course.UniversityID); err != nil {
		if errors.Is(err, apperrors.ErrUniversityNotFound) {
			return 0, apperrors.ErrUniversityNotFound
		}
		return 0, fmt.Errorf("error checking university: %w", err)
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return 0, fmt.Errorf("error creating course: %w", err)
	}
	return id, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return course, nil
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	return courses, nil
}

// DeleteCourse deletes a course by ID
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	err := s.courseRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
